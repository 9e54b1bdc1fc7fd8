package rgraph

import "errors"

// ErrSubsetViolation indicates a relaxation edge's sub-factor scope was not
// a strict subset of its super-factor's scope.
var ErrSubsetViolation = errors.New("rgraph: sub-factor scope is not a strict subset of super-factor scope")
