/*
Package epitran adapts the epitran G2P library.

epitran is a python library for rule-based transliteration into IPA,
keyed by ISO 639-3 language plus ISO 15924 script ("spa-Latn"). The
adapter runs one python interpreter per corpus with a small driver
script; epitran itself must be installed in the interpreter's
environment.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package epitran

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	g2p "github.com/npuichigo/g2p-plus"
	"github.com/npuichigo/g2p-plus/internal/extproc"
)

// tracer traces to g2p.backend .
func tracer() tracing.Trace {
	return tracing.Select("g2p.backend")
}

// Runner executes the python interpreter. Tests substitute canned
// output; production code passes nil to New.
type Runner interface {
	Run(ctx context.Context, stdin, name string, args ...string) (string, error)
}

// supportedLanguages is the subset of epitran's language-script codes
// this adapter ships folding support for.
var supportedLanguages = []string{
	"deu-Latn",
	"fra-Latn",
	"ita-Latn",
	"nld-Latn",
	"pol-Latn",
	"por-Latn",
	"ron-Latn",
	"spa-Latn",
	"swe-Latn",
	"tur-Latn",
	"vie-Latn",
	"yor-Latn",
}

// driverScript transliterates stdin line by line. Words are separated
// by tabs and phonemes by spaces in the output, so the Go side can
// recover both segmentations.
const driverScript = `
import sys
import epitran
epi = epitran.Epitran(sys.argv[1])
for line in sys.stdin:
    words = line.split()
    print('\t'.join(' '.join(epi.trans_list(w)) for w in words))
`

// Backend drives epitran for one fixed language-script code.
type Backend struct {
	language string
	run      Runner
}

// New builds an epitran backend. Only codes from the shipped support
// list are accepted.
func New(lang string, _ g2p.Options, run Runner) (*Backend, error) {
	if run == nil {
		run = extproc.Exec()
	}
	for _, l := range supportedLanguages {
		if l == lang {
			return &Backend{language: lang, run: run}, nil
		}
	}
	return nil, &g2p.UnsupportedLanguageError{
		Backend:  "epitran",
		Language: lang,
		Help:     SupportedLanguagesMessage(),
	}
}

// SupportedLanguagesMessage lists the accepted language-script codes.
func SupportedLanguagesMessage() string {
	return "The epitran backend supports ISO 639-3 plus script codes: " +
		strings.Join(supportedLanguages, ", ") + "."
}

// Transcribe runs the python driver once over all lines. Epitran never
// merges or drops words, so the output word segmentation mirrors the
// input.
func (b *Backend) Transcribe(ctx context.Context, lines []string) ([]g2p.RawUtterance, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	tracer().P("lang", b.language).Debugf("transliterating %d lines with epitran", len(lines))
	stdout, err := b.run.Run(ctx, strings.Join(lines, "\n")+"\n",
		"python3", "-c", driverScript, b.language)
	if err != nil {
		return nil, &g2p.BackendInvocationError{Backend: "epitran", Err: err}
	}
	rows := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(rows) != len(lines) {
		return nil, &g2p.BackendInvocationError{
			Backend: "epitran",
			Err:     fmt.Errorf("epitran returned %d lines for %d inputs", len(rows), len(lines)),
		}
	}
	out := make([]g2p.RawUtterance, len(lines))
	for i, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		var words [][]string
		for _, w := range strings.Split(row, "\t") {
			if tokens := strings.Fields(w); len(tokens) > 0 {
				words = append(words, tokens)
			}
		}
		out[i] = g2p.RawUtterance{Words: words}
	}
	return out, nil
}
