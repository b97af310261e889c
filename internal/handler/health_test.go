package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveness_OK(t *testing.T) {
	w := get(newRouter(&stubCatalog{}), "/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness_OK(t *testing.T) {
	w := get(newRouter(&stubCatalog{}), "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
}

func TestReadiness_Unavailable(t *testing.T) {
	w := get(newRouter(&stubCatalog{pingErr: errors.New("db down")}), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}

func TestUnknownPath_NotFound(t *testing.T) {
	w := get(newRouter(&stubCatalog{}), "/no-such")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocs(t *testing.T) {
	r := newRouter(&stubCatalog{})

	w := get(r, "/openapi.yaml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/datos:")

	w = get(r, "/docs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
