package ui

import (
	"errors"
	"fmt"
)

// ErrInvalidState is wrapped by every tree invariant violation. A host receiving it should
// treat the affected tree as corrupted.
var ErrInvalidState = errors.New("ui: invalid tree state")

var (
	ErrHasParent = fmt.Errorf("%w: element already has a parent", ErrInvalidState)
	ErrNotChild  = fmt.Errorf("%w: element is not a child of this parent", ErrInvalidState)
	ErrNoParent  = fmt.Errorf("%w: element has no parent", ErrInvalidState)
	ErrCycle     = fmt.Errorf("%w: element would become its own ancestor", ErrInvalidState)
)
