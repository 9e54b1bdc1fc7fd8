package uai

import "github.com/blang/semver/v4"

// FormatVersion is the .ans writer's own format version, stamped as a
// leading comment line so a future reader can tell which layout produced
// a given file. It tracks this module's release version; MustParse panics
// on a malformed literal, a build-time programmer error, not a runtime one.
var FormatVersion = semver.MustParse("0.1.0")
