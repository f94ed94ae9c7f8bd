package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scaffold package.
var (
	// ErrDestinationExists indicates the destination directory already
	// holds content and force was not requested.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrStagingFailed indicates the staged tree could not be written.
	// The destination is untouched when this is returned.
	ErrStagingFailed = errors.New("staging failed")

	// ErrCommitFailed indicates the final rename into place failed after
	// staging succeeded.
	ErrCommitFailed = errors.New("commit failed")
)

// DestinationExistsError reports a preflight conflict at a concrete
// path.
type DestinationExistsError struct {
	Path string
}

func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination %q already exists (use force to replace it)", e.Path)
}

func (e *DestinationExistsError) Unwrap() error { return ErrDestinationExists }
