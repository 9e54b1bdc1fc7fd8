// Package ftable provides the dense real-valued table arithmetic the srmp
// solver runs its reparametrizations on: element-wise add/subtract, in-place
// scaling, min-reduction, and the partial-min-over-difference-variables
// kernel used when sending a message from a super-factor to a sub-factor.
//
// All values are IEEE-754 doubles. NaN is never permitted in a Table; +Inf
// is permitted and represents a forbidden assignment. Tables are plain
// []float64 wrappers, not an abstract Matrix: the srmp solver only ever
// needs flat, fixed-length vectors indexed by a factor's linear labeling.
package ftable
