package coord

// List is an ordered sequence of coordinates. Insertion order is both the
// iteration order and the serialization order; duplicates are allowed.
type List []Coordinate

// Clone returns a value copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	return append(List(nil), l...)
}

// Equal reports element-wise exact equality.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
