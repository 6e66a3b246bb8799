package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stagifyapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServesEmbeddedSite(t *testing.T) {
	e := newTestServer(t, &test.StagingProcessorMock{})

	rec := doRequest(e, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stagify")
}

func TestAPIRoutesAreRegistered(t *testing.T) {
	e := newTestServer(t, &test.StagingProcessorMock{})

	for _, route := range []string{"/api/process-image", "/api/process-blueprint", "/api/log-contact"} {
		rec := doRequest(e, httptest.NewRequest("POST", route, nil))
		assert.NotEqual(t, http.StatusNotFound, rec.Code, "route %s is not registered", route)
	}
}
