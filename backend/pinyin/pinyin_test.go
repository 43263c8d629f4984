package pinyin

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	g2p "github.com/npuichigo/g2p-plus"
)

func TestLanguageGate(t *testing.T) {
	if _, err := New("mandarin", g2p.Options{}); err != nil {
		t.Errorf("mandarin should be supported, have: %v", err)
	}
	_, err := New("cantonese", g2p.Options{})
	var unsupported *g2p.UnsupportedLanguageError
	if err == nil {
		t.Fatalf("expected cantonese to be rejected")
	}
	if !errors.As(err, &unsupported) {
		t.Errorf("expected an UnsupportedLanguageError, have %T", err)
	}
}

func TestSyllables(t *testing.T) {
	cases := []struct {
		syll string
		want []string
	}{
		{"ni3", []string{"n", "i˨˩˦"}},
		{"hao3", []string{"x", "aʊ̯˨˩˦"}},
		{"ma1", []string{"m", "a˥"}},
		{"ma", []string{"m", "a"}}, // unnumbered: no tone
		{"zhong1", []string{"ʈʂ", "ʊ", "ŋ˥"}},
		{"shi4", []string{"ʂ", "ɻ̩˥˩"}},
		{"si4", []string{"s", "ɹ̩˥˩"}},
		{"wo3", []string{"w", "o˨˩˦"}},
		{"yi1", []string{"i˥"}},
		{"yue4", []string{"ɥ", "e˥˩"}},
		{"er2", []string{"ɚ˧˥"}},
		{"lv4", []string{"l", "y˥˩"}},
	}
	for _, c := range cases {
		have, err := syllableToIPA(c.syll)
		if err != nil {
			t.Errorf("%q should convert, have: %v", c.syll, err)
			continue
		}
		if !reflect.DeepEqual(have, c.want) {
			t.Errorf("%q: expected %v, have %v", c.syll, c.want, have)
		}
	}
}

func TestUnknownSyllableFailsLineOnly(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	b, _ := New("mandarin", g2p.Options{})
	out, err := b.Transcribe(context.Background(), []string{"ni3 hao3", "xq9z"})
	if err != nil {
		t.Fatalf("a broken line must not fail the batch: %v", err)
	}
	if out[0].Err != nil {
		t.Errorf("first line should convert, have: %v", out[0].Err)
	}
	if out[1].Err == nil {
		t.Errorf("second line should carry a per-line error")
	}
}

func TestZeroTonesStripped(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	b, _ := New("mandarin", g2p.Options{})
	out, err := b.Transcribe(context.Background(), []string{"ma0"})
	if err != nil || out[0].Err != nil {
		t.Fatalf("zero tones must be tolerated: %v %v", err, out[0].Err)
	}
	if !reflect.DeepEqual(out[0].Words, [][]string{{"m", "a"}}) {
		t.Errorf("expected toneless syllable, have %v", out[0].Words)
	}
}

func TestWordSegmentationPreserved(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	b, _ := New("mandarin", g2p.Options{})
	out, _ := b.Transcribe(context.Background(), []string{"ni3 hao3 ma5"})
	if len(out[0].Words) != 3 {
		t.Errorf("expected 3 words, have %v", out[0].Words)
	}
}
