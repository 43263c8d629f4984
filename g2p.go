package g2p

import (
	"context"
	"fmt"
)

// Options configures a transcription run. The zero value transcribes
// without folding and without word-boundary markers. Options are not
// mutated after construction.
type Options struct {
	// KeepWordBoundaries inserts a WORD_BOUNDARY token between words
	// of the output stream (never at utterance edges).
	KeepWordBoundaries bool

	// ApplyFolding remaps raw backend symbols through a folding table.
	// When false, raw backend output passes through unchanged
	// ("uncorrected" mode) and no table is consulted.
	ApplyFolding bool

	// AllowFaulty emits word boundaries on a best-effort basis even
	// when the backend altered the word count of an utterance.
	// Without it, such utterances are dropped.
	AllowFaulty bool

	// PreservePunctuation keeps punctuation in the backend output.
	PreservePunctuation bool

	// WithStress keeps stress markers in the backend output.
	WithStress bool

	// SplitTones emits tone contours as separate tokens instead of
	// fused onto the preceding vowel symbol.
	SplitTones bool
}

// RawUtterance is one input line's backend output: an ordered sequence
// of words, each word an ordered sequence of raw phoneme tokens.
//
// A backend that could not transcribe a single line sets Err for that
// line instead of failing the whole batch; the orchestrator drops the
// line and reports it.
type RawUtterance struct {
	Words [][]string
	Err   error
}

// Backend is the single capability every G2P backend provides: turn a
// batch of text lines into per-line raw phoneme token sequences.
// Backends are invoked once per corpus, not per line, as some have
// considerable per-call startup overhead.
//
// Implementations are constructed for a fixed language; see package
// backend for the closed set of known backends.
type Backend interface {
	Transcribe(ctx context.Context, lines []string) ([]RawUtterance, error)
}

// Transcription is the per-line outcome of a run, index-aligned with
// the input corpus. Dropped lines have empty Text and carry a Reason.
type Transcription struct {
	Line    int    // index of the input line
	Text    string // space-separated phoneme tokens
	Dropped bool
	Reason  string
}

// Summary reports corpus-level totals of a transcription run.
type Summary struct {
	Processed int // lines handed to the backend
	Dropped   int // lines absent from the output
}

func (s Summary) String() string {
	return fmt.Sprintf("%d lines processed, %d dropped", s.Processed, s.Dropped)
}
