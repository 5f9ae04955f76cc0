package recon

import (
	"errors"
	"fmt"
)

// ErrNoSources indicates no input source files were discovered. Fatal for
// the whole run.
var ErrNoSources = errors.New("no input sources found")

// SheetError represents a failure while processing one sheet. It is caught
// at the orchestrator level: the sheet gets a zero-valued summary and the
// run continues.
type SheetError struct {
	Sheet string
	Stage string // currently only "write"; source load failures recover per source
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
