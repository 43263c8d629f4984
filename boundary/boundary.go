/*
Package boundary reconstructs word-boundary markers after G2P
transcription.

Backends may merge, split, or silently drop words while transcribing
(contractions, silent words, language switches), so the word
segmentation of the phoneme output does not always line up with the
input text. This package compares the two segmentations and either
interleaves a boundary marker between words, concatenates everything,
or signals that the utterance must be dropped because boundary markers
would be misleading.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package boundary

import (
	"fmt"
)

// Marker is the word-boundary token, emitted standalone between words
// and never at utterance edges.
const Marker = "WORD_BOUNDARY"

// A Mismatch is returned by Reconcile when the backend altered the
// word count of an utterance and boundary markers were requested
// without tolerance for faulty ones. The utterance must be dropped.
type Mismatch struct {
	Original    int // words in the input line
	Transcribed int // words the backend returned
}

func (e *Mismatch) Error() string {
	return fmt.Sprintf("word count changed during transcription (%d words in, %d out)", e.Original, e.Transcribed)
}

// Reconcile flattens a transcribed utterance into a single token
// stream, validating the backend's word segmentation against the
// original word count.
//
// With keep set and matching counts, a Marker token is interleaved
// between each pair of adjacent non-empty words; markers never lead or
// trail the stream and are never adjacent to each other. With keep set
// and differing counts, Reconcile returns a *Mismatch unless
// allowFaulty is set, in which case markers are inserted best-effort
// along the backend's segmentation. Without keep, counts are
// irrelevant and the words are simply concatenated.
func Reconcile(originalWords int, words [][]string, keep, allowFaulty bool) ([]string, error) {
	transcribed := 0
	n := 0
	for _, w := range words {
		if len(w) > 0 {
			transcribed++
			n += len(w)
		}
	}
	if keep && transcribed != originalWords && !allowFaulty {
		return nil, &Mismatch{Original: originalWords, Transcribed: transcribed}
	}
	if keep && transcribed > 0 {
		n += transcribed - 1
	}
	out := make([]string, 0, n)
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		if keep && len(out) > 0 {
			out = append(out, Marker)
		}
		out = append(out, w...)
	}
	return out, nil
}
