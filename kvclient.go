package brochure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrStoreUnavailable covers every read failure against the content
	// store: missing configuration, a network error, a non-200 status,
	// or a response without a value envelope. Callers fall back to the
	// bundled default document instead of surfacing it.
	ErrStoreUnavailable = errors.New("brochure: content store unavailable")

	// ErrNotConfigured is returned by writes when the store base URL or
	// API key is absent. Reads in that state report ErrStoreUnavailable.
	ErrNotConfigured = errors.New("brochure: content store not configured")
)

// KVClient reads and writes the content blob against the remote
// key-value store. It keeps no cache and never retries; each call is a
// single attempt and callers decide what a failure means.
type KVClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewKVClient creates a client for the store at baseURL. Empty baseURL
// or apiKey is a valid configuration meaning default-content-only mode.
func NewKVClient(baseURL, apiKey string) *KVClient {
	return &KVClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

func (c *KVClient) configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// storedValue is the wire envelope the store returns on reads. A
// response missing the value field is a store failure, not content.
type storedValue struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Get fetches the document stored under key. Any failure collapses to
// ErrStoreUnavailable, wrapped with the underlying cause.
func (c *KVClient) Get(ctx context.Context, key string) (ContentDocument, error) {
	var doc ContentDocument
	if !c.configured() {
		return doc, fmt.Errorf("%w: missing base URL or API key", ErrStoreUnavailable)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+url.PathEscape(key), nil)
	if err != nil {
		return doc, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	req.Header.Set("X-API-Key", c.APIKey)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return doc, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return doc, fmt.Errorf("%w: store responded %d", ErrStoreUnavailable, resp.StatusCode)
	}
	var sv storedValue
	if err := json.NewDecoder(resp.Body).Decode(&sv); err != nil {
		return doc, fmt.Errorf("%w: decode response: %v", ErrStoreUnavailable, err)
	}
	if len(sv.Value) == 0 || string(sv.Value) == "null" {
		return doc, fmt.Errorf("%w: response missing value", ErrStoreUnavailable)
	}
	if err := json.Unmarshal(sv.Value, &doc); err != nil {
		return doc, fmt.Errorf("%w: decode value: %v", ErrStoreUnavailable, err)
	}
	return doc, nil
}

// Put writes doc under key, replacing the previous value in full. A
// non-200 response fails with the upstream status and body so the
// admin sees what the store rejected.
func (c *KVClient) Put(ctx context.Context, key string, doc ContentDocument) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("brochure: encode document: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.BaseURL+"/"+url.PathEscape(key), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("brochure: store write failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.APIKey)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("brochure: store write failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brochure: store write failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
