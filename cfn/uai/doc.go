// Package uai reads and writes the UAI and UAI-LG model file formats and
// writes the solver's .ans result format.
//
// UAI and UAI-LG share one reader and one writer here: the pre-pass's
// resolved convention (spec design notes, open question on sign/log
// handling) is that file values are interpreted literally as costs to
// minimize, with no sign flip and no log transform for either variant. The
// lg flag is accepted for format-identification purposes only (callers
// typically select it from a .uai vs .uai.lg file extension) and does not
// change how values are parsed or written.
package uai
