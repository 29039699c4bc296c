package brochure

import (
	"testing"
	"time"
)

func TestTTLCacheServesWhileFresh(t *testing.T) {
	c := NewTTLCache(time.Minute)
	c.Set(testDocument())

	got, ok := c.Get()
	if !ok {
		t.Fatal("expected a fresh cache hit")
	}
	if got.Hero.Title != testDocument().Hero.Title {
		t.Errorf("Hero.Title = %q, want %q", got.Hero.Title, testDocument().Hero.Title)
	}
}

func TestTTLCacheExpires(t *testing.T) {
	c := NewTTLCache(50 * time.Millisecond)
	c.Set(testDocument())

	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get(); ok {
		t.Fatal("expected a miss after the interval elapsed")
	}
}

func TestTTLCacheInvalidate(t *testing.T) {
	c := NewTTLCache(time.Minute)
	c.Set(testDocument())
	c.Invalidate()

	if _, ok := c.Get(); ok {
		t.Fatal("expected a miss after Invalidate")
	}
}

func TestTTLCacheEmptyMisses(t *testing.T) {
	c := NewTTLCache(time.Minute)
	if _, ok := c.Get(); ok {
		t.Fatal("expected a miss on an empty cache")
	}
}

func TestTTLCacheReturnsCopies(t *testing.T) {
	c := NewTTLCache(time.Minute)
	c.Set(testDocument())

	got, ok := c.Get()
	if !ok {
		t.Fatal("expected a hit")
	}
	got.Capabilities.Items[0].Title = "mutated"

	again, _ := c.Get()
	if again.Capabilities.Items[0].Title == "mutated" {
		t.Error("cache handed out a shared slice")
	}
}
