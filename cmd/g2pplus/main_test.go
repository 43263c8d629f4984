package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunPinyinRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("ni3 hao3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	code := run([]string{"-k", "-t", "-i", in, "-o", out, "pinyin_to_ipa", "mandarin"})
	if code != 0 {
		t.Fatalf("expected exit 0, have %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "n i ˨˩˦ WORD_BOUNDARY x au ˨˩˦\n" {
		t.Errorf("unexpected output %q", string(data))
	}
}

func TestRunUnsupportedLanguageExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"-i", in, "pinyin_to_ipa", "klingon"}); code != 1 {
		t.Errorf("expected exit 1 for an unsupported language, have %d", code)
	}
}

func TestRunRejectsMissingArguments(t *testing.T) {
	if code := run([]string{"-k"}); code != 1 {
		t.Errorf("expected exit 1 without backend/language, have %d", code)
	}
}
