package domain

import (
	"errors"
	"fmt"
)

// ErrNoVocabulary is returned when the payload decodes to an empty list
var ErrNoVocabulary = errors.New("no vocabulary data")

// DataLoadError describes a failed vocabulary load.
// It is fatal to navigation until the vocabulary is loaded again.
type DataLoadError struct {
	Path   string
	Status int // 0 when no response was received
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load vocabulary %s: HTTP %d", e.Path, e.Status)
	}
	return fmt.Sprintf("load vocabulary %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
