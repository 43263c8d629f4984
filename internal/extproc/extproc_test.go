package extproc

import (
	"context"
	"strings"
	"testing"
)

func TestExecPipesStdin(t *testing.T) {
	out, err := Exec().Run(context.Background(), "hello\n", "cat")
	if err != nil {
		t.Fatalf("cat should run: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("expected stdin piped through, have %q", out)
	}
}

func TestExecMissingBinary(t *testing.T) {
	_, err := Exec().Run(context.Background(), "", "no-such-g2p-binary")
	if err == nil {
		t.Errorf("expected an error for a missing binary")
	}
}

func TestExecReportsStderr(t *testing.T) {
	_, err := Exec().Run(context.Background(), "", "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatalf("expected a failure")
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("expected stderr in the error, have %q", got)
	}
}
