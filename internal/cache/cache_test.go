package cache

import "testing"

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(2)

	c.Put("alpha", "one")
	c.Put("beta", "two")
	c.Put("alpha", "three")

	if c.Len() != 2 {
		t.Fatalf("cache grew on update: got %d entries, want 2", c.Len())
	}

	if v, ok := c.Get("alpha"); !ok || v != "three" {
		t.Fatalf("expected updated alpha, got %v (hit=%v)", v, ok)
	}
	if v, ok := c.Get("beta"); !ok || v != "two" {
		t.Fatalf("expected beta to remain, got %v (hit=%v)", v, ok)
	}
}

func TestEvictionDropsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(2)

	c.Put("first", 1)
	c.Put("second", 2)

	// Touch first so second becomes the eviction candidate.
	if _, ok := c.Get("first"); !ok {
		t.Fatal("expected first to be present")
	}

	c.Put("third", 3)

	if _, ok := c.Get("second"); ok {
		t.Fatal("expected second to be evicted")
	}
	if _, ok := c.Get("first"); !ok {
		t.Fatal("expected first to survive")
	}
	if _, ok := c.Get("third"); !ok {
		t.Fatal("expected third to be present")
	}
}

func TestZeroSizeClampsToOne(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(0)
	c.Put("only", "value")
	c.Put("next", "value")

	if c.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", c.Len())
	}
}
