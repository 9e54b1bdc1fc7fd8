// Package stride builds the offset tables that let the srmp solver move
// between a super-factor A's linear label index and the label index of one
// of its sub-factors B, where vars(B) is a subset of vars(A).
//
// A labeling of a factor is encoded as a single integer using the
// lexicographic stride in which the last variable in the sorted scope
// varies fastest (row-major, matching the teacher's Dense matrix layout).
// Build produces stride_B: a table of length K(B) mapping each labeling of
// B to the offset in A's table whose B-component equals that labeling and
// whose difference-variables are all 0. BuildDiff produces stride_diff over
// C = vars(A) \ vars(B): the offset contributed by C's labeling alone. The
// full A-offset for (b, c) is stride_B[b] + stride_diff[c].
package stride
