package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelayRouter(cfg RelayConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewRelayController(cfg, zerolog.Nop())
	router.Any("/api/deepseek/v1/chat/completions", controller.Forward)
	return router
}

func TestRelayRejectsNonPost(t *testing.T) {
	router := newRelayRouter(RelayConfig{APIKey: "sk-test", UpstreamURL: "http://example.invalid"})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/deepseek/v1/chat/completions", nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code, method)
		assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"), method)
	}
}

func TestRelayMissingCredential(t *testing.T) {
	router := newRelayRouter(RelayConfig{UpstreamURL: "http://example.invalid"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/deepseek/v1/chat/completions", strings.NewReader(`{}`))
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "API key missing")
}

func TestRelayMirrorsUpstreamSuccess(t *testing.T) {
	var gotAuth, gotBody string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer upstream.Close()

	router := newRelayRouter(RelayConfig{APIKey: "sk-test", UpstreamURL: upstream.URL})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/deepseek/v1/chat/completions",
		strings.NewReader(`{"model":"deepseek-chat"}`))
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"choices":[{"message":{"content":"ok"}}]}`, recorder.Body.String())
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.JSONEq(t, `{"model":"deepseek-chat"}`, gotBody)
}

func TestRelayMirrorsUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer upstream.Close()

	router := newRelayRouter(RelayConfig{APIKey: "sk-test", UpstreamURL: upstream.URL})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/deepseek/v1/chat/completions", strings.NewReader(`{}`))
	router.ServeHTTP(recorder, req)

	// Non-2xx upstream replies pass through untouched.
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "rate limited")
}

func TestRelayUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstream.Close()

	router := newRelayRouter(RelayConfig{APIKey: "sk-test", UpstreamURL: upstream.URL})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/deepseek/v1/chat/completions", strings.NewReader(`{}`))
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal Server Error proxying request.")
}
