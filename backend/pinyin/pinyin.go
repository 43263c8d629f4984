/*
Package pinyin converts Mandarin pinyin text to IPA phonemes.

This is a native port of the pinyin-to-ipa conversion: each syllable
is decomposed into initial, final and tone, mapped through bundled
tables, and the tone is written as a Chao tone-letter contour fused to
the last symbol of the syllable. Both numbered ("ni3 hao3") and
unnumbered pinyin are accepted; unnumbered syllables simply carry no
tone.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package pinyin

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

// syllableRe extracts pinyin syllables from a word, handling both
// numbered and unnumbered formats.
var syllableRe = regexp.MustCompile(`[a-zA-Zü]+[0-9]*`)

// Backend converts pinyin to IPA. It supports only Mandarin.
type Backend struct{}

// New builds the pinyin backend. The only accepted language is
// "mandarin".
func New(lang string, _ g2p.Options) (*Backend, error) {
	if lang != "mandarin" {
		return nil, &g2p.UnsupportedLanguageError{
			Backend:  "pinyin_to_ipa",
			Language: lang,
			Help:     SupportedLanguagesMessage(),
		}
	}
	return &Backend{}, nil
}

// SupportedLanguagesMessage names the single supported language.
func SupportedLanguagesMessage() string {
	return "The pinyin_to_ipa backend only supports `mandarin`."
}

// Transcribe converts each line word by word. A word containing a
// syllable that cannot be parsed fails that line only; the rest of the
// batch is unaffected.
func (b *Backend) Transcribe(_ context.Context, lines []string) ([]g2p.RawUtterance, error) {
	out := make([]g2p.RawUtterance, len(lines))
	broken := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		words, err := transcribeLine(line)
		if err != nil {
			out[i] = g2p.RawUtterance{Err: err}
			broken++
			continue
		}
		out[i] = g2p.RawUtterance{Words: words}
	}
	if broken > 0 {
		tracer().Infof("%d lines were not phonemized by pinyin to ipa conversion", broken)
	}
	return out, nil
}

func transcribeLine(line string) ([][]string, error) {
	var words [][]string
	for _, word := range strings.Fields(line) {
		var tokens []string
		for _, syll := range syllableRe.FindAllString(word, -1) {
			// '0' tone markers carry no information
			syll = strings.ReplaceAll(syll, "0", "")
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
