/*
Package g2p turns written text into a normalized phonemic (IPA)
representation.

Description

Grapheme-to-phoneme (G2P) conversion is delegated to one of several
external backends (espeak-ng via the phonemizer conventions, epitran,
pinyin-to-ipa, pingyam). Backends disagree about symbol inventories:
the same phoneme may surface as different raw symbols depending on the
backend and language. This package therefore applies a per-(backend,
language) "folding" step that remaps raw backend symbols onto a
standard phoneme inventory (Phoible-style), so that downstream
consumers see one consistent phoneme vocabulary regardless of the
backend used.

A transcription run takes a corpus of utterances (one per line),
invokes the backend once over the whole batch, folds every word's raw
symbols, reconciles word boundaries, and emits one space-separated
phoneme string per surviving line. Lines whose word count was altered
by the backend are dropped rather than emitted with misleading
boundary markers (unless explicitly allowed).

Typical Usage

Clients construct a backend, load the folding table for the
backend/language pair, and hand both to TranscribeUtterances:

  b, _ := backend.New("phonemizer", "en-gb", opts)
  table, _ := fold.Load("phonemizer", "en-gb")
  results, summary, err := g2p.TranscribeUtterances(ctx, lines, b, table, opts)

Results are index-aligned with the input lines; dropped lines carry a
reason instead of text.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package g2p

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to g2p.transcribe .
func tracer() tracing.Trace {
	return tracing.Select("g2p.transcribe")
}
