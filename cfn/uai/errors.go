package uai

import "errors"

// Sentinel errors for malformed UAI input. The reader wraps each one with
// the field being read (and, where relevant, the function index); it does
// not track line numbers.
var (
	ErrUnsupportedGraphType = errors.New("uai: only MARKOV graph type is supported")
	ErrTruncatedFile        = errors.New("uai: file ended before all expected data was read")
	ErrMalformedInteger     = errors.New("uai: expected an integer")
	ErrMalformedFloat       = errors.New("uai: expected a floating point number")
)
