package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBanner(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodGet, "/", nil)
	require.NoError(t, Index(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "CineManager API", body["message"])
	assert.Equal(t, "1.0", body["version"])
}

func TestHealth(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodGet, "/healthz", nil)
	require.NoError(t, Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
