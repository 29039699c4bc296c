package brochure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeStore is an in-memory stand-in for the remote key-value service.
type fakeStore struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
	gets   int
	puts   int
	apiKey string
}

func newFakeStore(apiKey string) (*fakeStore, *httptest.Server) {
	fs := &fakeStore{values: make(map[string]json.RawMessage), apiKey: apiKey}
	srv := httptest.NewServer(fs)
	return fs, srv
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.Header.Get("X-API-Key") != f.apiKey {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
		return
	}
	key := r.URL.Path[1:]
	switch r.Method {
	case http.MethodGet:
		f.gets++
		value, ok := f.values[key]
		if !ok {
			http.Error(w, `{"error":"key not found"}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]json.RawMessage{
			"key":   json.RawMessage(`"` + key + `"`),
			"value": value,
		})
	case http.MethodPut:
		f.puts++
		var value json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
			http.Error(w, `{"error":"bad json"}`, http.StatusBadRequest)
			return
		}
		f.values[key] = value
		_, _ = w.Write([]byte(`{"key":"` + key + `"}`))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeStore) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeStore) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func (f *fakeStore) set(key string, doc ContentDocument) {
	raw, _ := json.Marshal(doc)
	f.mu.Lock()
	f.values[key] = raw
	f.mu.Unlock()
}

func newTestResolver(srvURL string, ttl time.Duration) *Resolver {
	return NewResolver(NewKVClient(srvURL, "secret"), NewTTLCache(ttl), "page-content")
}

func TestResolveReturnsStoredDocument(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()
	want := testDocument()
	fs.set("page-content", want)

	r := newTestResolver(srv.URL, time.Minute)
	got := r.Resolve(context.Background())
	if got.Hero.Title != want.Hero.Title {
		t.Errorf("Hero.Title = %q, want %q", got.Hero.Title, want.Hero.Title)
	}
}

func TestResolveFallsBackWhenUnconfigured(t *testing.T) {
	r := NewResolver(NewKVClient("", ""), NewTTLCache(time.Minute), "page-content")
	got := r.Resolve(context.Background())

	want := DefaultContent()
	if got.Hero.Title != want.Hero.Title {
		t.Errorf("expected the bundled default, got hero title %q", got.Hero.Title)
	}
}

func TestResolveFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL, time.Minute)
	got := r.Resolve(context.Background())
	if got.Hero.Title != DefaultContent().Hero.Title {
		t.Errorf("expected the bundled default on HTTP 500")
	}
}

func TestResolveFallsBackOnInvalidStoredDocument(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()
	broken := testDocument()
	broken.Capabilities.Items = nil // fails validation
	fs.set("page-content", broken)

	r := newTestResolver(srv.URL, time.Minute)
	got := r.Resolve(context.Background())
	if got.Hero.Title != DefaultContent().Hero.Title {
		t.Errorf("a stored document failing validation must not be served")
	}
}

func TestResolveCachesWithinInterval(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()
	fs.set("page-content", testDocument())

	r := newTestResolver(srv.URL, time.Minute)
	r.Resolve(context.Background())
	r.Resolve(context.Background())
	r.Resolve(context.Background())

	if n := fs.getCount(); n != 1 {
		t.Errorf("store GETs = %d, want 1 while the cache is fresh", n)
	}
}

func TestResolveRefetchesAfterInterval(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()
	fs.set("page-content", testDocument())

	r := newTestResolver(srv.URL, 50*time.Millisecond)
	r.Resolve(context.Background())
	time.Sleep(80 * time.Millisecond)
	r.Resolve(context.Background())

	if n := fs.getCount(); n != 2 {
		t.Errorf("store GETs = %d, want 2 after the interval elapsed", n)
	}
}

func TestPersistRejectsInvalidWithoutNetworkCall(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()

	r := newTestResolver(srv.URL, time.Minute)
	doc := testDocument()
	doc.Approach.Paragraphs = nil

	err := r.Persist(context.Background(), doc)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if fs.putCount() != 0 {
		t.Errorf("store PUTs = %d, want 0 for an invalid document", fs.putCount())
	}
}

func TestPersistUnconfigured(t *testing.T) {
	r := NewResolver(NewKVClient("", ""), NewTTLCache(time.Minute), "page-content")
	err := r.Persist(context.Background(), testDocument())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestPersistThenResolveRoundTrips(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()
	fs.set("page-content", testDocument())

	r := newTestResolver(srv.URL, time.Minute)
	r.Resolve(context.Background()) // warm the cache

	updated := testDocument()
	updated.Hero.Title = "X"
	updated.Approach.Paragraphs = []string{"one", "two", "three"}
	if err := r.Persist(context.Background(), updated); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	// Persist invalidated the cache, so this read hits the store.
	got := r.Resolve(context.Background())
	if got.Hero.Title != "X" {
		t.Errorf("Hero.Title = %q, want %q after save", got.Hero.Title, "X")
	}
	if len(got.Approach.Paragraphs) != 3 || got.Approach.Paragraphs[2] != "three" {
		t.Errorf("paragraph order lost in round trip: %v", got.Approach.Paragraphs)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	fs, srv := newFakeStore("secret")
	defer srv.Close()
	fs.set("page-content", testDocument())

	r := newTestResolver(srv.URL, time.Minute)
	r.Resolve(context.Background())
	if err := r.Invalidate("/"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	r.Resolve(context.Background())

	if n := fs.getCount(); n != 2 {
		t.Errorf("store GETs = %d, want 2 after Invalidate", n)
	}
}
