package contentstore

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// maxValueBytes bounds a stored blob; the content document is a few KB
// of copy, so anything near this limit is a client error.
const maxValueBytes = 1 << 20

// Handler serves the store's HTTP surface: GET and PUT of a JSON value
// per key, authenticated by a static API key header.
type Handler struct {
	store  *Store
	apiKey string
}

// NewHandler creates a Handler over store. apiKey must be non-empty;
// every request is checked against it.
func NewHandler(store *Store, apiKey string) *Handler {
	return &Handler{store: store, apiKey: apiKey}
}

// Register mounts the store routes on e.
func (h *Handler) Register(e *echo.Echo) {
	g := e.Group("", h.requireAPIKey)
	g.GET("/:key", h.handleGet)
	g.PUT("/:key", h.handlePut)
}

func (h *Handler) requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		got := c.Request().Header.Get("X-API-Key")
		if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.apiKey)) != 1 {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid api key"})
		}
		return next(c)
	}
}

// entry is the wire envelope for reads: { key, value }.
type entry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func (h *Handler) handleGet(c echo.Context) error {
	key := c.Param("key")
	value, err := h.store.Get(key)
	if err == ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "key not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry{Key: key, Value: value})
}

func (h *Handler) handlePut(c echo.Context) error {
	key := c.Param("key")
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxValueBytes+1))
	if err != nil {
		return err
	}
	if len(body) > maxValueBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "value too large"})
	}
	if !json.Valid(body) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "value must be valid JSON"})
	}
	if err := h.store.Put(key, body); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"key": key, "success": true})
}
