/*
Package pingyam converts Cantonese jyutping text to IPA phonemes.

This is a native port of the pingyam romanization tables: jyutping
syllables ("nei5 hou2") are decomposed into initial, final and tone,
mapped through bundled tables, and the tone is written as a Chao
tone-letter contour fused to the last symbol of the syllable.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package pingyam

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	g2p "github.com/npuichigo/g2p-plus"
)

// tracer traces to g2p.backend .
func tracer() tracing.Trace {
	return tracing.Select("g2p.backend")
}

// syllableRe extracts jyutping syllables: letters plus a tone digit
// 1-6 (the digit may be missing in sloppy input).
var syllableRe = regexp.MustCompile(`[a-z]+[1-6]?`)

// Backend converts jyutping to IPA. It supports only Cantonese.
type Backend struct{}

// New builds the pingyam backend. Accepted language codes are
// "cantonese" and "yue".
func New(lang string, _ g2p.Options) (*Backend, error) {
	if lang != "cantonese" && lang != "yue" {
		return nil, &g2p.UnsupportedLanguageError{
			Backend:  "pingyam",
			Language: lang,
			Help:     SupportedLanguagesMessage(),
		}
	}
	return &Backend{}, nil
}

// SupportedLanguagesMessage names the single supported language.
func SupportedLanguagesMessage() string {
	return "The pingyam backend only supports Cantonese (`cantonese` or `yue`)."
}

// Transcribe converts each line word by word. A word containing a
// syllable that cannot be parsed fails that line only.
func (b *Backend) Transcribe(_ context.Context, lines []string) ([]g2p.RawUtterance, error) {
	out := make([]g2p.RawUtterance, len(lines))
	broken := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		words, err := transcribeLine(strings.ToLower(line))
		if err != nil {
			out[i] = g2p.RawUtterance{Err: err}
			broken++
			continue
		}
		out[i] = g2p.RawUtterance{Words: words}
	}
	if broken > 0 {
		tracer().Infof("%d lines were not phonemized by jyutping to ipa conversion", broken)
	}
	return out, nil
}

func transcribeLine(line string) ([][]string, error) {
	var words [][]string
	for _, word := range strings.Fields(line) {
		var tokens []string
		for _, syll := range syllableRe.FindAllString(word, -1) {
			toks, err := syllableToIPA(syll)
			if err != nil {
				return nil, fmt.Errorf("word %q: %w", word, err)
			}
			tokens = append(tokens, toks...)
		}
		if len(tokens) > 0 {
			words = append(words, tokens)
		}
	}
	return words, nil
}
