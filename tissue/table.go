// SPDX-License-Identifier: MIT

package tissue

// Table is an immutable snapshot of the 16 compartments for one variant.
// A *Table is safe for concurrent use; nothing mutates it after NewTable.
type Table struct {
	variant      Variant
	version      uint64
	compartments [Count]Compartment
}

// NewTable builds the table for v. Unknown variants yield ErrUnknownVariant.
func NewTable(v Variant) (*Table, error) {
	if !v.Valid() {
		return nil, tissueErrorf("NewTable", ErrUnknownVariant, "%d", int(v))
	}

	return newTable(v, 0), nil
}

// MustTable is NewTable for known-good variants; it panics otherwise.
func MustTable(v Variant) *Table {
	t, err := NewTable(v)
	if err != nil {
		panic(err)
	}

	return t
}

func newTable(v Variant, version uint64) *Table {
	a := aCoefficients[v]
	t := &Table{variant: v, version: version}
	for i := 0; i < Count; i++ {
		t.compartments[i] = Compartment{
			ID:       i + 1,
			HalfTime: halfTimes[i],
			AN2:      a[i],
			BN2:      bCoefficients[i],
		}
	}

	return t
}

// Variant returns the coefficient set this snapshot was built from.
func (t *Table) Variant() Variant { return t.variant }

// Version is the registry generation that published this snapshot
// (0 for tables built directly with NewTable).
func (t *Table) Version() uint64 { return t.version }

// Len always returns Count.
func (t *Table) Len() int { return Count }

// At returns compartment i (0-based). Panics when i is out of range,
// like a slice index.
func (t *Table) At(i int) Compartment { return t.compartments[i] }

// ByID returns the compartment with the 1-based id.
func (t *Table) ByID(id int) (Compartment, error) {
	if id < 1 || id > Count {
		return Compartment{}, tissueErrorf("ByID", ErrCompartmentIndex, "id=%d", id)
	}

	return t.compartments[id-1], nil
}

// Compartments returns a copy of the ordered compartment list.
func (t *Table) Compartments() []Compartment {
	out := make([]Compartment, Count)
	copy(out, t.compartments[:])

	return out
}

// Validate checks the ordering invariants of the table.
func (t *Table) Validate() error {
	for i, c := range t.compartments {
		if c.ID != i+1 {
			return tissueErrorf("Validate", ErrTableInvariant, "compartment %d has id %d", i, c.ID)
		}
		if c.HalfTime <= 0 || c.AN2 <= 0 || c.BN2 <= 0 || c.BN2 >= 1 {
			return tissueErrorf("Validate", ErrTableInvariant, "compartment %d coefficients out of range", c.ID)
		}
		if i == 0 {
			continue
		}
		prev := t.compartments[i-1]
		switch {
		case c.HalfTime <= prev.HalfTime:
			return tissueErrorf("Validate", ErrTableInvariant, "half-time not increasing at %d", c.ID)
		case c.AN2 >= prev.AN2:
			return tissueErrorf("Validate", ErrTableInvariant, "a not decreasing at %d", c.ID)
		case c.BN2 <= prev.BN2:
			return tissueErrorf("Validate", ErrTableInvariant, "b not increasing at %d", c.ID)
		}
	}

	return nil
}
