/*
Package phonemizer adapts the espeak-ng G2P engine.

The adapter follows the conventions of the phonemizer library: one
batched invocation over the whole corpus, phoneme-level separators in
the output, and removal of utterances where espeak switched language
mid-line. espeak-ng must be installed; language support is read from
`espeak-ng --voices` at construction time, which covers well over a
hundred languages and accents.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package phonemizer

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"

	g2p "github.com/npuichigo/g2p-plus"
	"github.com/npuichigo/g2p-plus/internal/extproc"
)

// tracer traces to g2p.backend .
func tracer() tracing.Trace {
	return tracing.Select("g2p.backend")
}

// Runner executes the espeak-ng binary. Tests substitute canned
// output; production code passes nil to New and gets the os/exec
// implementation.
type Runner interface {
	Run(ctx context.Context, stdin, name string, args ...string) (string, error)
}

// stress markers espeak-ng attaches to phoneme tokens
const stressMarkers = "ˈˌ'"

// errLanguageSwitch drops lines where espeak fell back to another
// language; their phonemes would mix inventories.
var errLanguageSwitch = errors.New("language switch detected during transcription")

// Backend drives espeak-ng for one fixed language (voice).
type Backend struct {
	voice string
	opts  g2p.Options
	run   Runner
}

// New builds an espeak-ng backend for a language code. The code is
// normalized through BCP-47 parsing before voice lookup, so "en-GB"
// and "en-gb" are equivalent. New queries the installed espeak-ng for
// its voice list and fails with g2p.UnsupportedLanguageError when the
// language is not among them.
func New(lang string, opts g2p.Options, run Runner) (*Backend, error) {
	if run == nil {
		run = extproc.Exec()
	}
	voice := strings.ToLower(lang)
	if tag, err := language.Parse(lang); err == nil {
		voice = strings.ToLower(tag.String())
	}
	voices, err := listVoices(run)
	if err != nil {
		return nil, &g2p.BackendInvocationError{Backend: "phonemizer", Err: err}
	}
	if !contains(voices, voice) {
		return nil, &g2p.UnsupportedLanguageError{
			Backend:  "phonemizer",
			Language: lang,
			Help:     SupportedLanguagesMessage(),
		}
	}
	return &Backend{voice: voice, opts: opts, run: run}, nil
}

// SupportedLanguagesMessage describes where the language list comes from.
func SupportedLanguagesMessage() string {
	return "The phonemizer backend uses espeak-ng, which supports over 100 languages and accents.\n" +
		"For the list of supported languages, run `espeak-ng --voices`."
}

// listVoices parses `espeak-ng --voices` output: a header line, then
// one row per voice with the language code in the second column.
func listVoices(run Runner) ([]string, error) {
	out, err := run.Run(context.Background(), "", "espeak-ng", "--voices")
	if err != nil {
		return nil, err
	}
	var voices []string
	rows := strings.Split(strings.TrimSpace(out), "\n")
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		cols := strings.Fields(row)
		if len(cols) > 1 {
			voices = append(voices, strings.ToLower(cols[1]))
		}
	}
	return voices, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Transcribe runs espeak-ng once over all non-blank lines. Output uses
// `--ipa=3`, which separates phonemes with underscores and words with
// spaces. Blank input lines yield empty utterances without touching
// the binary.
func (b *Backend) Transcribe(ctx context.Context, lines []string) ([]g2p.RawUtterance, error) {
	out := make([]g2p.RawUtterance, len(lines))
	var nonblank []int
	var sb strings.Builder
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonblank = append(nonblank, i)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if len(nonblank) == 0 {
		return out, nil
	}
	tracer().P("voice", b.voice).Debugf("phonemizing %d lines with espeak-ng", len(nonblank))
	stdout, err := b.run.Run(ctx, sb.String(), "espeak-ng", "-q", "--ipa=3", "-v", b.voice)
	if err != nil {
		return nil, &g2p.BackendInvocationError{Backend: "phonemizer", Err: err}
	}
	rows := splitOutputLines(stdout)
	if len(rows) != len(nonblank) {
		return nil, &g2p.BackendInvocationError{
			Backend: "phonemizer",
			Err:     errors.New("espeak-ng returned a different number of lines than it was given"),
		}
	}
	for r, i := range nonblank {
		out[i] = b.parseLine(rows[r])
	}
	return out, nil
}

func splitOutputLines(stdout string) []string {
	stdout = strings.TrimRight(stdout, "\n")
	if stdout == "" {
		return nil
	}
	return strings.Split(stdout, "\n")
}

// parseLine turns one espeak output line into words of phoneme tokens.
func (b *Backend) parseLine(row string) g2p.RawUtterance {
	var words [][]string
	for _, field := range strings.Fields(row) {
		if isSwitchMarker(field) {
			return g2p.RawUtterance{Err: errLanguageSwitch}
		}
		var tokens []string
		for _, phone := range strings.Split(field, "_") {
			phone = b.cleanPhone(phone)
			if phone == "" {
				continue
			}
			tokens = append(tokens, phone)
		}
		if len(tokens) > 0 {
			words = append(words, tokens)
		}
	}
	return g2p.RawUtterance{Words: words}
}

// isSwitchMarker recognizes espeak's "(en)"-style language-switch flags.
func isSwitchMarker(field string) bool {
	return len(field) > 2 && field[0] == '(' && field[len(field)-1] == ')'
}

// cleanPhone strips stress markers (unless requested) and punctuation
// (unless preserved) from a phoneme token.
func (b *Backend) cleanPhone(phone string) string {
	if !b.opts.WithStress {
		phone = strings.TrimLeft(phone, stressMarkers)
	}
	if !b.opts.PreservePunctuation && isPunctuation(phone) {
		return ""
	}
	return phone
}

func isPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
