/*
Package backend resolves G2P backend names onto their adapters.

The set of backends is closed: phonemizer (espeak-ng), epitran,
pinyin_to_ipa and pingyam. Resolution happens over this explicit
switch rather than any dynamic lookup, so adding a backend means
adding a variant here.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package backend

import (
	"context"
	"fmt"

	g2p "github.com/npuichigo/g2p-plus"
	"github.com/npuichigo/g2p-plus/backend/epitran"
	"github.com/npuichigo/g2p-plus/backend/phonemizer"
	"github.com/npuichigo/g2p-plus/backend/pingyam"
	"github.com/npuichigo/g2p-plus/backend/pinyin"
	"github.com/npuichigo/g2p-plus/fold"
)

// Names lists the known backend identifiers.
func Names() []string {
	return []string{"phonemizer", "epitran", "pinyin_to_ipa", "pingyam"}
}

// New resolves a backend identifier and constructs the adapter for a
// language. Construction validates language support; an unknown
// identifier or unsupported language is an error before any line is
// processed.
func New(name, language string, opts g2p.Options) (g2p.Backend, error) {
	switch name {
	case "phonemizer":
		return phonemizer.New(language, opts, nil)
	case "epitran":
		return epitran.New(language, opts, nil)
	case "pinyin_to_ipa":
		return pinyin.New(language, opts)
	case "pingyam":
		return pingyam.New(language, opts)
	}
	return nil, fmt.Errorf("unknown backend %q (known: %v)", name, Names())
}

// tableLanguage maps accepted language aliases onto the name of the
// bundled folding table. Backends may accept more spellings than
// tables are shipped for ("cantonese" is the pingyam "yue" table).
func tableLanguage(name, language string) string {
	if name == "pingyam" && language == "cantonese" {
		return "yue"
	}
	return language
}

// TranscribeUtterances is the one-call library entry point: it
// resolves the backend, loads the folding table for the pair when
// folding is requested, and runs the pipeline. A missing folding
// table surfaces as an UnsupportedLanguageError.
func TranscribeUtterances(ctx context.Context, lines []string, name, language string, opts g2p.Options) ([]g2p.Transcription, g2p.Summary, error) {
	b, err := New(name, language, opts)
	if err != nil {
		return nil, g2p.Summary{}, err
	}
	var table *fold.Table
	if opts.ApplyFolding {
		table, err = fold.Load(name, tableLanguage(name, language))
		if err == fold.ErrNoTable {
			return nil, g2p.Summary{}, &g2p.UnsupportedLanguageError{
				Backend:  name,
				Language: language,
				Help:     "no folding table is bundled for this pair; pass uncorrected mode to skip folding",
			}
		}
		if err != nil {
			return nil, g2p.Summary{}, err
		}
	}
	return g2p.TranscribeUtterances(ctx, lines, b, table, opts)
}
