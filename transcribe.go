package g2p

import (
	"context"
	"fmt"
	"strings"

	"github.com/npuichigo/g2p-plus/boundary"
	"github.com/npuichigo/g2p-plus/fold"
)

// TranscribeUtterances runs the whole pipeline over a corpus: one
// batched backend invocation, per-word folding (unless disabled),
// word-boundary reconciliation, and formatting. The result is
// index-aligned with lines, so callers can match outputs to input line
// numbers; dropped lines carry a reason instead of text.
//
// Configuration problems (no folding table while folding is requested,
// a failing backend invocation) abort the run. Per-line problems never
// do: a line the backend could not transcribe, or whose word count
// changed, is dropped and counted in the summary.
func TranscribeUtterances(ctx context.Context, lines []string, b Backend, table *fold.Table, opts Options) ([]Transcription, Summary, error) {
	if opts.ApplyFolding && table == nil {
		return nil, Summary{}, ErrNoFoldingTable
	}
	raw, err := b.Transcribe(ctx, lines)
	if err != nil {
		return nil, Summary{}, err
	}
	if len(raw) != len(lines) {
		return nil, Summary{}, fmt.Errorf("g2p: backend returned %d utterances for %d lines", len(raw), len(lines))
	}
	out := make([]Transcription, len(lines))
	summary := Summary{Processed: len(lines)}
	for i, u := range raw {
		out[i].Line = i
		if u.Err != nil {
			out[i].Dropped = true
			out[i].Reason = u.Err.Error()
			summary.Dropped++
			continue
		}
		if strings.TrimSpace(lines[i]) == "" {
			continue // blank lines stay blank, they are not dropped
		}
		words := u.Words
		if opts.ApplyFolding {
			words = make([][]string, len(u.Words))
			for w, tokens := range u.Words {
				folded, unmapped := table.Fold(tokens, opts.SplitTones)
				words[w] = folded
				for _, sym := range unmapped {
					tracer().P("line", i).Infof("unmapped symbol %q passed through", sym)
				}
			}
		}
		tokens, err := boundary.Reconcile(len(strings.Fields(lines[i])), words,
			opts.KeepWordBoundaries, opts.AllowFaulty)
		if err != nil {
			out[i].Dropped = true
			out[i].Reason = err.Error()
			summary.Dropped++
			continue
		}
		out[i].Text = strings.Join(tokens, " ")
	}
	tracer().Infof("transcribed corpus: %v", summary)
	return out, summary, nil
}
