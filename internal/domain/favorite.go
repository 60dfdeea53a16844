package domain

// Favorites is the set of favorited destination IDs. Insertion order is kept
// so the persisted array is stable, but callers should only rely on Contains.
type Favorites []int

func (f Favorites) Contains(id int) bool {
	for _, v := range f {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle returns a new set with id removed if present, appended otherwise.
// The receiver is left untouched.
func (f Favorites) Toggle(id int) (Favorites, bool) {
	if f.Contains(id) {
		next := make(Favorites, 0, len(f))
		for _, v := range f {
			if v != id {
				next = append(next, v)
			}
		}
		return next, false
	}
	next := make(Favorites, len(f), len(f)+1)
	copy(next, f)
	return append(next, id), true
}

// Equal reports set equality, ignoring order.
func (f Favorites) Equal(other Favorites) bool {
	if len(f) != len(other) {
		return false
	}
	for _, v := range f {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
