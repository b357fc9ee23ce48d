// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package excise

import "fmt"

// ErrBadLimit is returned when the removal limit is negative.
type ErrBadLimit struct {
	Limit int64
}

func (e *ErrBadLimit) Error() string {
	return fmt.Sprintf("limit %d: cannot be less than 0", e.Limit)
}

// ErrReadFile is returned when the input file cannot be read.
type ErrReadFile struct {
	Path string
	Err  error
}

func (e *ErrReadFile) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ErrReadFile) Unwrap() error {
	return e.Err
}
