/*
Package fold remaps raw G2P backend symbols onto a normalized IPA
inventory.

Content

Every G2P backend has its own opinion about symbol shapes: espeak-ng
emits r-colored diphthongs as single clusters, pinyin conversion glues
Chao tone letters onto vowels, and so on. Folding is table-driven
symbol substitution that brings all of them onto one target inventory
(Phoible-style), so that a downstream consumer never has to know which
backend produced a phoneme string.

A folding table is an ordered rule set for one (backend, language)
pair. Rule keys are sequences of raw tokens; rule outputs are
sequences of normalized tokens. Keys spanning several tokens express
cluster merges (two raw tokens becoming one affricate), outputs with
several tokens express cluster splits. Matching is greedy
longest-match over the token stream, widest key first, with no
backtracking. Raw symbols no rule covers pass through unchanged and
are reported to the caller; they indicate an incomplete table, never
an error.

Tables for the bundled backends are embedded in the binary and loaded
with Load. Tables are immutable after loading and safe for concurrent
use.

Typical Usage

  table, err := fold.Load("phonemizer", "en-gb")
  ...
  folded, unmapped := table.Fold(rawTokens, false)

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package fold

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to g2p.fold .
func tracer() tracing.Trace {
	return tracing.Select("g2p.fold")
}
