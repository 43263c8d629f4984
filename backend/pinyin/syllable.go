package pinyin

import (
	"fmt"
	"strings"
)

// s is a shorthand to build a token slice.
func s(tokens ...string) []string { return tokens }

// initials maps pinyin onset spellings to IPA. Two-letter spellings
// (zh, ch, sh) are checked before single letters (longest match).
var initials = []struct {
	spelling string
	ipa      string
}{
	{"zh", "ʈʂ"},
	{"ch", "ʈʂʰ"},
	{"sh", "ʂ"},
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
	{"h", "x"},
	{"j", "tɕ"},
	{"q", "tɕʰ"},
	{"x", "ɕ"},
	{"r", "ʐ"},
	{"z", "ts"},
	{"c", "tsʰ"},
	{"s", "s"},
}

// finals maps pinyin rhyme spellings to IPA token sequences. The 'v'
// spelling stands for ü.
var finals = map[string][]string{
	"a":    s("a"),
	"o":    s("ɔ"),
	"e":    s("ɤ"),
	"ai":   s("aɪ̯"),
	"ei":   s("eɪ̯"),
	"ao":   s("aʊ̯"),
	"ou":   s("oʊ̯"),
	"an":   s("a", "n"),
	"en":   s("ə", "n"),
	"ang":  s("a", "ŋ"),
	"eng":  s("ə", "ŋ"),
	"ong":  s("ʊ", "ŋ"),
	"er":   s("ɚ"),
	"i":    s("i"),
	"ia":   s("j", "a"),
	"ie":   s("j", "e"),
	"iao":  s("j", "aʊ̯"),
	"iu":   s("j", "oʊ̯"),
	"ian":  s("j", "ɛ", "n"),
	"in":   s("i", "n"),
	"iang": s("j", "a", "ŋ"),
	"ing":  s("i", "ŋ"),
	"iong": s("j", "ʊ", "ŋ"),
	"u":    s("u"),
	"ua":   s("w", "a"),
	"uo":   s("w", "o"),
	"uai":  s("w", "aɪ̯"),
	"ui":   s("w", "eɪ̯"),
	"uan":  s("w", "a", "n"),
	"un":   s("w", "ə", "n"),
	"uang": s("w", "a", "ŋ"),
	"ueng": s("w", "ə", "ŋ"),
	"v":    s("y"),
	"ve":   s("ɥ", "e"),
	"ue":   s("ɥ", "e"),
	"van":  s("ɥ", "ɛ", "n"),
	"vn":   s("y", "n"),
}

// tones maps tone digits to Chao tone-letter contours. The neutral
// tone (5) carries no contour.
var tones = map[byte]string{
	'1': "˥",
	'2': "˧˥",
	'3': "˨˩˦",
	'4': "˥˩",
}

// dental and retroflex sibilant initials take an apical vowel for the
// bare final "i" (zi, ci, si vs. zhi, chi, shi, ri)
var apical = map[string]string{
	"ts": "ɹ̩", "tsʰ": "ɹ̩", "s": "ɹ̩",
	"ʈʂ": "ɻ̩", "ʈʂʰ": "ɻ̩", "ʂ": "ɻ̩", "ʐ": "ɻ̩",
}

// syllableToIPA converts one pinyin syllable, optionally carrying a
// trailing tone digit, to IPA tokens. The tone contour is fused onto
// the last token of the syllable; tone separation is the folding
// engine's job.
func syllableToIPA(syll string) ([]string, error) {
	syll = strings.ReplaceAll(strings.ToLower(syll), "ü", "v")
	base, tone := splitTone(syll)
	if base == "" {
		return nil, fmt.Errorf("syllable %q has no phonetic content", syll)
	}
	initial, rest := splitInitial(base)
	rest = normalizeSemivowels(base, rest)
	final, ok := finals[rest]
	if !ok {
		return nil, fmt.Errorf("unknown pinyin final %q in syllable %q", rest, syll)
	}
	var tokens []string
	if initial != "" {
		tokens = append(tokens, initial)
		if rest == "i" {
			if ap, ok := apical[initial]; ok {
				final = s(ap)
			}
		}
	}
	tokens = append(tokens, final...)
	if contour, ok := tones[tone]; ok {
		tokens[len(tokens)-1] += contour
	}
	return tokens, nil
}

// splitTone takes the trailing tone digit off a syllable. When several
// digits are present the last one wins.
func splitTone(syll string) (base string, tone byte) {
	i := len(syll)
	for i > 0 && syll[i-1] >= '0' && syll[i-1] <= '9' {
		i--
	}
	if i == len(syll) {
		return syll, 0
	}
	return syll[:i], syll[len(syll)-1]
}

// splitInitial matches the longest initial spelling that prefixes the
// syllable. Syllables starting with y/w have no initial consonant.
func splitInitial(base string) (ipa, rest string) {
	for _, in := range initials {
		if strings.HasPrefix(base, in.spelling) {
			return in.ipa, base[len(in.spelling):]
		}
	}
	return "", base
}

// normalizeSemivowels rewrites y-/w- spellings onto the bare finals
// they stand for: yi=i, ya=ia, yu=v, wu=u, wa=ua, and so on.
func normalizeSemivowels(base, rest string) string {
	if rest != base {
		return rest // had a real initial, nothing to rewrite
	}
	switch {
	case strings.HasPrefix(rest, "yi"):
		return rest[1:]
	case strings.HasPrefix(rest, "yu"):
		return "v" + rest[2:]
	case strings.HasPrefix(rest, "y"):
		return "i" + rest[1:]
	case rest == "wu":
		return "u"
	case strings.HasPrefix(rest, "w"):
		return "u" + rest[1:]
	}
	return rest
}
