package fold_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npuichigo/g2p-plus/fold"
)

func ExampleTable_Fold() {
	table, _ := fold.New("phonemizer", "en-us", []fold.Rule{
		{Raw: []string{"ɚ"}, Out: []string{"ə", "ɹ"}},
		{Raw: []string{"h"}, Out: []string{"h"}},
		{Raw: []string{"ɛ"}, Out: []string{"ɛ"}},
	})
	folded, _ := table.Fold([]string{"h", "ɛ", "ɚ"}, false)
	fmt.Println(folded)
	// Output: [h ɛ ə ɹ]
}

func mustTable(t *testing.T, rules []fold.Rule) *fold.Table {
	t.Helper()
	table, err := fold.New("test", "xx", rules)
	if err != nil {
		t.Fatalf("table should load, but: %v", err)
	}
	return table
}

func TestFoldDeterministic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"a"}, Out: []string{"ɑ"}},
		{Raw: []string{"b"}, Out: []string{"b"}},
	})
	in := []string{"a", "b", "a"}
	first, _ := table.Fold(in, false)
	second, _ := table.Fold(in, false)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected folding to be deterministic, have %v then %v", first, second)
	}
}

func TestFoldLongestMatchWins(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"a"}, Out: []string{"A"}},
		{Raw: []string{"ai"}, Out: []string{"AI"}},
	})
	folded, unmapped := table.Fold([]string{"ai"}, false)
	t.Logf("folded = %v, unmapped = %v", folded, unmapped)
	if !reflect.DeepEqual(folded, []string{"AI"}) {
		t.Errorf("expected the 'ai' rule to win, have %v", folded)
	}
	if len(unmapped) != 0 {
		t.Errorf("expected no unmapped symbols, have %v", unmapped)
	}
}

func TestFoldMergesClusters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"t"}, Out: []string{"t"}},
		{Raw: []string{"ʃ"}, Out: []string{"ʃ"}},
		{Raw: []string{"t", "ʃ"}, Out: []string{"tʃ"}},
		{Raw: []string{"i"}, Out: []string{"i"}},
	})
	folded, _ := table.Fold([]string{"t", "ʃ", "i", "t"}, false)
	if !reflect.DeepEqual(folded, []string{"tʃ", "i", "t"}) {
		t.Errorf("expected the two-token rule to merge the affricate, have %v", folded)
	}
}

func TestFoldPassthroughSafety(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"zz"}, Out: []string{"zz"}},
	})
	in := []string{"q", "r", "s", "t"}
	folded, unmapped := table.Fold(in, false)
	if len(folded) != len(in) {
		t.Errorf("expected all %d unmapped tokens to pass through, have %d", len(in), len(folded))
	}
	if !reflect.DeepEqual(folded, in) {
		t.Errorf("expected tokens unchanged, have %v", folded)
	}
	if len(unmapped) != len(in) {
		t.Errorf("expected %d unmapped symbols reported, have %v", len(in), unmapped)
	}
}

func TestFoldSplitTones(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"aʊ̯"}, Out: []string{"au"}},
		{Raw: []string{"x"}, Out: []string{"x"}},
	})
	in := []string{"x", "aʊ̯˨˩˦"}
	//
	fused, _ := table.Fold(in, false)
	if !reflect.DeepEqual(fused, []string{"x", "au˨˩˦"}) {
		t.Errorf("expected tone to stay fused on the vowel, have %v", fused)
	}
	split, _ := table.Fold(in, true)
	if !reflect.DeepEqual(split, []string{"x", "au", "˨˩˦"}) {
		t.Errorf("expected tone as separate trailing token, have %v", split)
	}
}

func TestFoldSplitTonesOnPassthrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"x"}, Out: []string{"x"}},
	})
	folded, unmapped := table.Fold([]string{"œ˥˩"}, true)
	if !reflect.DeepEqual(folded, []string{"œ", "˥˩"}) {
		t.Errorf("expected tone split off the unmapped symbol, have %v", folded)
	}
	if len(unmapped) != 1 {
		t.Errorf("expected the symbol reported as unmapped, have %v", unmapped)
	}
}

func TestFoldDeletionKeepsTone(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"ʔ"}, Out: nil}, // delete glottal stops
		{Raw: []string{"a"}, Out: []string{"a"}},
	})
	// the deleted symbol carries a tone contour; the tone must
	// survive as a bare token in both modes
	fused, _ := table.Fold([]string{"a", "ʔ˥"}, false)
	if !reflect.DeepEqual(fused, []string{"a", "˥"}) {
		t.Errorf("expected the tone to outlive the deleted symbol, have %v", fused)
	}
	split, _ := table.Fold([]string{"a", "ʔ˥"}, true)
	if !reflect.DeepEqual(split, []string{"a", "˥"}) {
		t.Errorf("expected the tone to outlive the deleted symbol, have %v", split)
	}
}

func TestFoldBareToneTokenUntouched(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, []fold.Rule{
		{Raw: []string{"˨˩˦"}, Out: []string{"˨˩˦"}},
	})
	folded, _ := table.Fold([]string{"˨˩˦"}, true)
	if !reflect.DeepEqual(folded, []string{"˨˩˦"}) {
		t.Errorf("expected a bare tone token to stay as is, have %v", folded)
	}
}
