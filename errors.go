package bitflag

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitflag/internal/layout"
)

// ErrInvalidWidth indicates a field width that is not one of 1, 2, 4, 8, 16, 32.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWidth struct {
	Width int
	cause error
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid width: %d", e.Width)
}

func (e *ErrInvalidWidth) Unwrap() error { return e.cause }

// ErrInvalidIndex indicates a negative logical field index.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidIndex struct {
	Index int
	cause error
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index: %d", e.Index)
}

func (e *ErrInvalidIndex) Unwrap() error { return e.cause }

func translateError(err error, index int) error {
	if err == nil {
		return nil
	}

	var iw *layout.ErrInvalidWidth
	if errors.As(err, &iw) {
		return &ErrInvalidWidth{Width: iw.Width, cause: err}
	}
	if errors.Is(err, layout.ErrNegativeIndex) {
		return &ErrInvalidIndex{Index: index, cause: err}
	}

	return err
}
