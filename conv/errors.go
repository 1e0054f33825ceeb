package conv

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors
var (
	ErrorIsDir     = errors.New("is a directory not a file")
	ErrorSameFile  = errors.New("input and output are the same file")
	ErrorChunkSize = errors.New("chunk size must be positive")
)

// ConversionError is returned when the input can't be converted, for
// example when it holds a character the output charset can't hold
type ConversionError struct {
	Offset int64 // input bytes converted before the failing chunk or -1 at the end of input
	Err    error
}

// Error satisfies the error interface
func (e *ConversionError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("conversion failed at end of input: %v", e.Err)
	}
	return fmt.Sprintf("conversion failed after %d bytes: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error
func (e *ConversionError) Unwrap() error {
	return e.Err
}
