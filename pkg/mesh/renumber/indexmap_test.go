package renumber

import "testing"

func TestIndexMap(t *testing.T) {
	m := newIndexMap(3)

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	if m.Complete() {
		t.Error("fresh map should not be complete")
	}
	if _, ok := m.Lookup(1); ok {
		t.Error("Lookup on unassigned vertex should report false")
	}
	if v, missing := m.FirstUnassigned(); !missing || v != 0 {
		t.Errorf("FirstUnassigned() = %d, %v, want 0, true", v, missing)
	}

	m.Assign(1, 0)
	m.Assign(0, 1)

	if idx, ok := m.Lookup(1); !ok || idx != 0 {
		t.Errorf("Lookup(1) = %d, %v, want 0, true", idx, ok)
	}
	if v, missing := m.FirstUnassigned(); !missing || v != 2 {
		t.Errorf("FirstUnassigned() = %d, %v, want 2, true", v, missing)
	}

	m.Assign(2, 2)
	if !m.Complete() {
		t.Error("map should be complete after all vertices assigned")
	}
	if _, missing := m.FirstUnassigned(); missing {
		t.Error("FirstUnassigned should report false on a complete map")
	}
}

func TestIndexMap_DoubleAssignPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("second Assign of the same vertex should panic")
		}
	}()
	m := newIndexMap(2)
	m.Assign(0, 0)
	m.Assign(0, 1)
}

// Index zero must be distinguishable from "unassigned".
func TestIndexMap_ZeroIndexIsAssigned(t *testing.T) {
	m := newIndexMap(2)
	m.Assign(1, 0)
	if idx, ok := m.Lookup(1); !ok || idx != 0 {
		t.Errorf("Lookup(1) = %d, %v, want 0, true", idx, ok)
	}
}
