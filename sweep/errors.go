package sweep

import (
	"errors"
	"fmt"
	"strings"
)

// Failure classes surfaced by extraction and loading. Callers that want to
// branch on the cause use errors.Is; the wrapped message carries the file
// or glob the failure came from.
var (
	// ErrMissingHeader means a log has no recognizable scenario header
	// (nLegacy, mHe and muAccessReqInterval lines).
	ErrMissingHeader = errors.New("scenario header not found")

	// ErrNoBlocks means a log has a header but not a single
	// AP_CWMIN/AP_CWMAX result block.
	ErrNoBlocks = errors.New("no result blocks found")

	// ErrNoMatchingFiles means the corpus glob matched nothing.
	ErrNoMatchingFiles = errors.New("no files matched pattern")

	// ErrEmptyCorpus means files matched and parsed, but every block in
	// every file was incomplete, leaving zero records.
	ErrEmptyCorpus = errors.New("no complete result blocks in corpus")
)

// SchemaError reports required columns absent from a model overlay CSV.
// Missing is sorted so the message is stable across runs.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}
