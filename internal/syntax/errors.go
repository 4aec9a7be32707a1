package syntax

import "errors"

// The two structural failure kinds. Accessors that promise a child the
// tree-building stage should have guaranteed return ErrMissing when the slot
// is empty or holds the wrong shape; ErrMetavariable reports a template
// placeholder where a concrete literal was required. Non-applicability is not
// an error and is reported as plain absence instead.
var (
	ErrMissing      = errors.New("missing required syntax")
	ErrMetavariable = errors.New("unexpected metavariable")
)
