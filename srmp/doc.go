// Package srmp implements sequential reweighted message passing over the
// factor/edge graph built by rgraph: a convergent block-coordinate ascent on
// the LP dual relaxation of a cost function network's energy minimization.
//
// Build runs the one-time pre-pass over a fixed factor sequence (edge
// classification into forward/backward, per-factor reweighting, and the
// initial lower bound contributed by isolated factors) and returns a ready
// *Solver. Run then performs forward/backward sweeps until one of the
// configured stopping conditions fires, optionally extracting a primal
// assignment along the way.
//
// The package is deliberately free of logging, configuration parsing, and
// metrics wiring; those live in cmd/srmpsolve and srmpmetrics. Run accepts a
// context.Context for cooperative cancellation and Options carries an
// optional MetricsSink for observability, keeping this package's own dependency
// surface limited to cfn, ftable, relaxation, and rgraph.
package srmp
