package g2p

import (
	"errors"
	"fmt"
)

// ErrNoFoldingTable is returned by TranscribeUtterances when folding
// was requested but no table has been provided.
var ErrNoFoldingTable = errors.New("g2p: folding requested without a folding table")

// UnsupportedLanguageError reports that a backend has no support (or
// no folding table) for the requested language. It is fatal for the
// run: no lines are processed.
type UnsupportedLanguageError struct {
	Backend  string
	Language string
	Help     string // backend-specific hint about what is supported
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("backend %q does not support language %q", e.Backend, e.Language)
}

// BackendInvocationError reports a whole-batch failure of the external
// G2P tool, e.g. a missing binary. Per-line failures are reported
// through RawUtterance.Err instead and never abort the batch.
type BackendInvocationError struct {
	Backend string
	Err     error
}

func (e *BackendInvocationError) Error() string {
	return fmt.Sprintf("backend %q invocation failed: %v", e.Backend, e.Err)
}

func (e *BackendInvocationError) Unwrap() error { return e.Err }
