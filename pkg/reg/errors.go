package reg

import "errors"

// Declaration and usage errors. Declaration errors are raised as panics
// while package variables are initialized, so they surface before main.
var (
	ErrNotStored        = errors.New("reg: entry used but never stored")
	ErrNilReader        = errors.New("reg: nil read accessor")
	ErrNilWriter        = errors.New("reg: nil write accessor")
	ErrMutableReference = errors.New("reg: read accessor must return a value or a read-only reference")
)
