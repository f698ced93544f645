package renumber

// indexMap records the new index assigned to each vertex during the color
// sweep. Assignment state is tracked explicitly rather than through a
// sentinel value, so an unassigned slot can never be mistaken for a valid
// index.
type indexMap struct {
	index    []int
	assigned []bool
	count    int
}

func newIndexMap(n int) *indexMap {
	return &indexMap{
		index:    make([]int, n),
		assigned: make([]bool, n),
	}
}

// Lookup returns the new index of vertex v and whether one has been assigned.
func (m *indexMap) Lookup(v int) (int, bool) {
	if !m.assigned[v] {
		return 0, false
	}
	return m.index[v], true
}

// Assign records idx as the new index of vertex v. Each vertex is assigned
// at most once; a second assignment indicates a broken sweep and panics.
func (m *indexMap) Assign(v, idx int) {
	if m.assigned[v] {
		panic("renumber: vertex assigned twice")
	}
	m.index[v] = idx
	m.assigned[v] = true
	m.count++
}

// Len returns the number of vertex slots.
func (m *indexMap) Len() int { return len(m.index) }

// Complete reports whether every vertex has an assigned new index.
func (m *indexMap) Complete() bool { return m.count == len(m.index) }

// FirstUnassigned returns the lowest vertex index with no assignment, or
// false if the map is complete.
func (m *indexMap) FirstUnassigned() (int, bool) {
	for v, ok := range m.assigned {
		if !ok {
			return v, true
		}
	}
	return 0, false
}
