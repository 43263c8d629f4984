// The command "g2pplus" converts text to a normalized phonemic (IPA)
// representation.
//
// It reads utterances (one per line) from a file or standard input,
// transcribes them with one of the known G2P backends, folds the raw
// backend symbols onto a normalized inventory, and writes one
// space-separated phoneme line per surviving utterance.
//
// Example usages:
//
//	# British English over espeak-ng, with word boundary markers:
//	echo "hello there" | g2pplus -k phonemizer en-gb
//
//	# Mandarin pinyin with tones as separate tokens:
//	g2pplus -k -t -i pinyin.txt pinyin_to_ipa mandarin
//
//	# Raw backend output, no folding:
//	g2pplus -u phonemizer en-us < corpus.txt
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	g2p "github.com/npuichigo/g2p-plus"
	"github.com/npuichigo/g2p-plus/backend"
)

const usage = `Usage: g2pplus [flags] <backend> <language>

Backends: phonemizer, epitran, pinyin_to_ipa, pingyam.
<language> may be "auto" to detect the language from the environment locale.

Flags:
  -k, --keep-word-boundaries   insert WORD_BOUNDARY tokens between words
  -u, --uncorrected            emit raw backend symbols, skip folding
  -a, --allow-faulty           keep utterances whose word count changed
  -p, --preserve-punctuation   keep punctuation in the output
  -s, --with-stress            keep stress markers in the output
  -t, --split-tones            emit tone contours as separate tokens
  -i FILE                      read utterances from FILE (default stdin)
  -o FILE                      write phoneme lines to FILE (default stdout)
  -v                           verbose tracing
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("g2pplus", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	var (
		keep        = fs.Bool("k", false, "insert WORD_BOUNDARY tokens between words")
		uncorrected = fs.Bool("u", false, "emit raw backend symbols, skip folding")
		allowFaulty = fs.Bool("a", false, "keep utterances whose word count changed")
		preserve    = fs.Bool("p", false, "keep punctuation in the output")
		withStress  = fs.Bool("s", false, "keep stress markers in the output")
		splitTones  = fs.Bool("t", false, "emit tone contours as separate tokens")
		inFile      = fs.String("i", "", "input file (default stdin)")
		outFile     = fs.String("o", "", "output file (default stdout)")
		verbose     = fs.Bool("v", false, "verbose tracing")
	)
	fs.BoolVar(keep, "keep-word-boundaries", false, "alias for -k")
	fs.BoolVar(uncorrected, "uncorrected", false, "alias for -u")
	fs.BoolVar(allowFaulty, "allow-faulty", false, "alias for -a")
	fs.BoolVar(preserve, "preserve-punctuation", false, "alias for -p")
	fs.BoolVar(withStress, "with-stress", false, "alias for -s")
	fs.BoolVar(splitTones, "split-tones", false, "alias for -t")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	name, lang := fs.Arg(0), fs.Arg(1)
	if lang == "auto" {
		lang = detectLanguage()
	}
	opts := g2p.Options{
		KeepWordBoundaries:  *keep,
		ApplyFolding:        !*uncorrected,
		AllowFaulty:         *allowFaulty,
		PreservePunctuation: *preserve,
		WithStress:          *withStress,
		SplitTones:          *splitTones,
	}

	lines, err := readLines(*inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	results, summary, err := backend.TranscribeUtterances(context.Background(), lines, name, lang, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var unsupported *g2p.UnsupportedLanguageError
		if errors.As(err, &unsupported) && unsupported.Help != "" {
			fmt.Fprintln(os.Stderr, unsupported.Help)
		}
		return 1
	}
	if err := writeResults(*outFile, results); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if summary.Dropped > 0 {
		fmt.Fprintf(os.Stderr, "g2pplus: %v\n", summary)
		for _, r := range results {
			if r.Dropped {
				fmt.Fprintf(os.Stderr, "g2pplus: line %d dropped: %s\n", r.Line+1, r.Reason)
			}
		}
	}
	return 0
}

// detectLanguage guesses a language code from the environment locale.
func detectLanguage() string {
	locale, err := jj.DetectIETF()
	if err != nil {
		return "en-us"
	}
	return strings.ToLower(locale)
}

func readLines(path string) ([]string, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// writeResults emits one line per surviving utterance, silently
// omitting dropped ones (they are reported on stderr instead).
func writeResults(path string, results []g2p.Transcription) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	for _, r := range results {
		if r.Dropped {
			continue
		}
		fmt.Fprintln(w, r.Text)
	}
	return w.Flush()
}
