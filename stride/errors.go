package stride

import "errors"

// ErrNotSubScope indicates that a requested sub-factor scope contains a
// variable absent from the super-factor scope.
var ErrNotSubScope = errors.New("stride: sub-factor scope is not a subset of super-factor scope")

// ErrCoverageMismatch indicates that a stride_B/stride_diff pair does not
// enumerate the super-factor's full index space exactly once per offset.
var ErrCoverageMismatch = errors.New("stride: offsets do not cover the super-factor index space")
