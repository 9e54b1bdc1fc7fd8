package ftable

import (
	"math"

	"github.com/katalvlaran/srmp/stride"
)

// Table is a dense, real-valued vector indexed by a factor's linear
// labeling. The zero value is not useful; construct with New or FromData.
type Table struct {
	Values []float64
}

// New allocates a zero-filled Table of length k.
func New(k int) *Table {
	return &Table{Values: make([]float64, k)}
}

// FromData wraps an existing slice as a Table without copying. Pass a
// defensive copy if the caller must retain ownership of the original.
func FromData(data []float64) *Table {
	return &Table{Values: data}
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := make([]float64, len(t.Values))
	copy(out, t.Values)
	return &Table{Values: out}
}

// Len returns the table's length.
func (t *Table) Len() int { return len(t.Values) }

// Add mutates t in place: t[i] += other[i]. Both tables must have equal
// length.
func (t *Table) Add(other *Table) error {
	if len(t.Values) != len(other.Values) {
		return ErrShapeMismatch
	}
	for i, v := range other.Values {
		t.Values[i] += v
	}
	return nil
}

// Sub mutates t in place: t[i] -= other[i]. Both tables must have equal
// length.
func (t *Table) Sub(other *Table) error {
	if len(t.Values) != len(other.Values) {
		return ErrShapeMismatch
	}
	for i, v := range other.Values {
		t.Values[i] -= v
	}
	return nil
}

// Scale mutates t in place: t[i] *= factor.
func (t *Table) Scale(factor float64) {
	for i := range t.Values {
		t.Values[i] *= factor
	}
}

// Min returns the smallest entry of t. Panics on an empty table (a
// programmer error: every factor has K(A) >= 1).
func (t *Table) Min() float64 {
	m := t.Values[0]
	for _, v := range t.Values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// CheckFinite returns ErrNaN if any entry of t is NaN. +Inf and -Inf are
// permitted (+Inf represents a forbidden assignment per the data model).
func (t *Table) CheckFinite() error {
	for _, v := range t.Values {
		if math.IsNaN(v) {
			return ErrNaN
		}
	}
	return nil
}

// AddBroadcast adds m, a sub-factor-sized table, into t (a super-factor
// sized table) at every offset st.Values[b]+diff.Values[c]:
//
//	t[st.Values[b]+diff.Values[c]] += m.Values[b]    for every b, c
//
// st and diff must be the stride_B / stride_diff pair of the edge that owns
// m; len(t.Values) must equal len(st.Values)*len(diff.Values) (K(A)).
func (t *Table) AddBroadcast(m *Table, st, diff *stride.Table) error {
	return t.broadcast(m, st, diff, 1)
}

// SubBroadcast is AddBroadcast with the opposite sign: it subtracts m's
// entries from t at the same broadcast offsets.
func (t *Table) SubBroadcast(m *Table, st, diff *stride.Table) error {
	return t.broadcast(m, st, diff, -1)
}

func (t *Table) broadcast(m *Table, st, diff *stride.Table, sign float64) error {
	if len(m.Values) != st.Len() {
		return ErrShapeMismatch
	}
	if len(t.Values) != st.Len()*diff.Len() {
		return ErrShapeMismatch
	}
	for b, base := range st.Values {
		mv := sign * m.Values[b]
		for _, c := range diff.Values {
			t.Values[base+c] += mv
		}
	}
	return nil
}

// PartialMin computes the message-send reduction of t (a super-factor A's
// reparametrization) down onto a sub-factor's label space:
//
//	out[b] = min_{c} t[st.Values[b]+diff.Values[c]]    for every b
//
// st and diff must be the stride_B / stride_diff pair of the edge being
// sent along; the returned Table has length st.Len().
func (t *Table) PartialMin(st, diff *stride.Table) (*Table, error) {
	if len(t.Values) != st.Len()*diff.Len() {
		return nil, ErrShapeMismatch
	}
	out := New(st.Len())
	for b, base := range st.Values {
		m := t.Values[base+diff.Values[0]]
		for _, c := range diff.Values[1:] {
			if v := t.Values[base+c]; v < m {
				m = v
			}
		}
		out.Values[b] = m
	}
	return out, nil
}
