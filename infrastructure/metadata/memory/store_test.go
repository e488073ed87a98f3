package memory

import "testing"

func TestWriteReadRemove(t *testing.T) {
	store := NewStore()

	if err := store.WriteEntry("ns", "key", "value"); err != nil {
		t.Fatalf("WriteEntry returned error: %v", err)
	}

	value, exists, err := store.ReadEntry("ns", "key")
	if err != nil || !exists || value != "value" {
		t.Errorf("ReadEntry = (%q, %v, %v), want (value, true, nil)", value, exists, err)
	}

	if err := store.RemoveEntry("ns", "key"); err != nil {
		t.Fatalf("RemoveEntry returned error: %v", err)
	}
	if _, exists, _ := store.ReadEntry("ns", "key"); exists {
		t.Error("entry should be gone after remove")
	}
}

func TestNamespacesAreIndependent(t *testing.T) {
	store := NewStore()

	_ = store.WriteEntry("a", "key", "one")
	_ = store.WriteEntry("b", "key", "two")

	value, _, _ := store.ReadEntry("a", "key")
	if value != "one" {
		t.Errorf("namespace a value = %q, want one", value)
	}
}
