package dialogstore

import (
	"testing"
	"time"
)

func TestStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	st := New[string]()

	id := st.Put("one")
	if id == "" {
		t.Fatalf("Put returned empty ID")
	}
	v, ok := st.Get(id)
	if !ok || v != "one" {
		t.Fatalf("Get(%q) = (%q, %v)", id, v, ok)
	}

	st.Delete(id)
	if _, ok := st.Get(id); ok {
		t.Fatalf("expected %q deleted", id)
	}
}

func TestStore_DistinctIDs(t *testing.T) {
	t.Parallel()

	st := New[int]()
	a := st.Put(1)
	b := st.Put(2)
	if a == b {
		t.Fatalf("expected distinct IDs, got %q twice", a)
	}
}

func TestStore_TTLEviction(t *testing.T) {
	t.Parallel()

	st := New[string]()
	st.SetTTL(20 * time.Millisecond)

	id := st.Put("ephemeral")
	if _, ok := st.Get(id); !ok {
		t.Fatalf("expected session to exist immediately")
	}

	time.Sleep(35 * time.Millisecond)

	if _, ok := st.Get(id); ok {
		t.Fatalf("expected session to be expired/evicted")
	}
}

func TestStore_MaxSessionsAndLRU(t *testing.T) {
	t.Parallel()

	st := New[string]()
	st.SetMaxSessions(2)

	s1 := st.Put("s1")
	s2 := st.Put("s2")

	// Touch s1 to make it MRU; s2 becomes LRU.
	if _, ok := st.Get(s1); !ok {
		t.Fatalf("expected s1 to exist")
	}

	s3 := st.Put("s3")

	if _, ok := st.Get(s2); ok {
		t.Fatalf("expected s2 evicted as LRU")
	}
	if _, ok := st.Get(s1); !ok {
		t.Fatalf("expected s1 retained as MRU")
	}
	if _, ok := st.Get(s3); !ok {
		t.Fatalf("expected s3 to exist")
	}
}
