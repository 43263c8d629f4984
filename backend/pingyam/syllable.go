package pingyam

import (
	"fmt"
	"strings"
)

// s is a shorthand to build a token slice.
func s(tokens ...string) []string { return tokens }

// initials maps jyutping onset spellings to IPA. Two-letter spellings
// are checked before single letters (longest match).
var initials = []struct {
	spelling string
	ipa      string
}{
	{"ng", "ŋ"},
	{"gw", "kʷ"},
	{"kw", "kʷʰ"},
	{"b", "p"},
	{"p", "pʰ"},
	{"m", "m"},
	{"f", "f"},
	{"d", "t"},
	{"t", "tʰ"},
	{"n", "n"},
	{"l", "l"},
	{"g", "k"},
	{"k", "kʰ"},
	{"h", "h"},
	{"z", "ts"},
	{"c", "tsʰ"},
	{"s", "s"},
	{"j", "j"},
	{"w", "w"},
}

// finals maps jyutping rhyme spellings to IPA token sequences.
// Unreleased stops carry the corner diacritic; offglides carry the
// non-syllabic diacritic.
var finals = map[string][]string{
	"aa":   s("aː"),
	"aai":  s("aː", "i̯"),
	"aau":  s("aː", "u̯"),
	"aam":  s("aː", "m"),
	"aan":  s("aː", "n"),
	"aang": s("aː", "ŋ"),
	"aap":  s("aː", "p̚"),
	"aat":  s("aː", "t̚"),
	"aak":  s("aː", "k̚"),
	"ai":   s("ɐ", "i̯"),
	"au":   s("ɐ", "u̯"),
	"am":   s("ɐ", "m"),
	"an":   s("ɐ", "n"),
	"ang":  s("ɐ", "ŋ"),
	"ap":   s("ɐ", "p̚"),
	"at":   s("ɐ", "t̚"),
	"ak":   s("ɐ", "k̚"),
	"e":    s("ɛː"),
	"ei":   s("e", "i̯"),
	"em":   s("ɛː", "m"),
	"eng":  s("ɛː", "ŋ"),
	"ep":   s("ɛː", "p̚"),
	"ek":   s("ɛː", "k̚"),
	"i":    s("iː"),
	"iu":   s("iː", "u̯"),
	"im":   s("iː", "m"),
	"in":   s("iː", "n"),
	"ing":  s("ɪ", "ŋ"),
	"ip":   s("iː", "p̚"),
	"it":   s("iː", "t̚"),
	"ik":   s("ɪ", "k̚"),
	"o":    s("ɔː"),
	"oi":   s("ɔː", "i̯"),
	"ou":   s("o", "u̯"),
	"om":   s("ɔː", "m"),
	"on":   s("ɔː", "n"),
	"ong":  s("ɔː", "ŋ"),
	"ot":   s("ɔː", "t̚"),
	"ok":   s("ɔː", "k̚"),
	"u":    s("uː"),
	"ui":   s("uː", "y̯"),
	"un":   s("uː", "n"),
	"ung":  s("ʊ", "ŋ"),
	"ut":   s("uː", "t̚"),
	"uk":   s("ʊ", "k̚"),
	"oe":   s("œː"),
	"oeng": s("œː", "ŋ"),
	"oek":  s("œː", "k̚"),
	"eo":   s("ɵ"),
	"eoi":  s("ɵ", "y̯"),
	"eon":  s("ɵ", "n"),
	"eot":  s("ɵ", "t̚"),
	"yu":   s("yː"),
	"yun":  s("yː", "n"),
	"yut":  s("yː", "t̚"),
	"m":    s("m"),
	"ng":   s("ŋ"),
}

// tones maps jyutping tone digits 1-6 to Chao tone-letter contours.
var tones = map[byte]string{
	'1': "˥",
	'2': "˧˥",
	'3': "˧",
	'4': "˨˩",
	'5': "˩˧",
	'6': "˨",
}

// syllableToIPA converts one jyutping syllable, optionally carrying a
// trailing tone digit, to IPA tokens. The tone contour is fused onto
// the last token; tone separation is the folding engine's job.
func syllableToIPA(syll string) ([]string, error) {
	base := syll
	var tone byte
	if last := syll[len(syll)-1]; last >= '1' && last <= '6' {
		base, tone = syll[:len(syll)-1], last
	}
	if base == "" {
		return nil, fmt.Errorf("syllable %q has no phonetic content", syll)
	}
	initial, rest := splitInitial(base)
	final, ok := finals[rest]
	if !ok {
		return nil, fmt.Errorf("unknown jyutping final %q in syllable %q", rest, syll)
	}
	var tokens []string
	if initial != "" {
		tokens = append(tokens, initial)
	}
	tokens = append(tokens, final...)
	if contour, ok := tones[tone]; ok {
		tokens[len(tokens)-1] += contour
	}
	return tokens, nil
}

// splitInitial matches the longest initial spelling that prefixes the
// syllable. Syllabic nasals ("m4", "ng5") have no initial, so a match
// that would consume the whole syllable is rejected when the spelling
// doubles as a final.
func splitInitial(base string) (ipa, rest string) {
	for _, in := range initials {
		if strings.HasPrefix(base, in.spelling) {
			rest = base[len(in.spelling):]
			if rest == "" {
				if _, isFinal := finals[base]; isFinal {
					return "", base // syllabic m / ng
				}
			}
			return in.ipa, rest
		}
	}
	return "", base
}
