package inference_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-pcbuilder-backend/config"
	"go-pcbuilder-backend/pkg/inference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url, apiKey string) *config.Config {
	return &config.Config{
		InferenceURL:      url,
		InferenceAPIKey:   apiKey,
		HTTPClientTimeout: 5 * time.Second,
	}
}

func TestForwardPassThrough(t *testing.T) {
	var gotAuth, gotContentType string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body) // echo
	}))
	defer stub.Close()

	client := inference.NewClient(testConfig(stub.URL, "secret-key"))

	payload := []byte(`{"cpu_pref":"amd"}`)
	result, err := client.Forward(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.JSONEq(t, `{"cpu_pref":"amd"}`, string(result.Body))
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Bearer secret-key", gotAuth)
}

func TestForwardOmitsAuthorizationWithoutCredential(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present, "Authorization header must be omitted entirely")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer stub.Close()

	client := inference.NewClient(testConfig(stub.URL, ""))

	_, err := client.Forward(context.Background(), []byte(`{}`))
	require.NoError(t, err)
}

func TestForwardRelaysDownstreamError(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"bad input"}`))
	}))
	defer stub.Close()

	client := inference.NewClient(testConfig(stub.URL, ""))

	result, err := client.Forward(context.Background(), []byte(`{"x":1}`))
	require.NoError(t, err, "a downstream error status is a result, not a transport failure")

	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
	assert.JSONEq(t, `{"error":"bad input"}`, string(result.Body))
}

func TestForwardUnreachableHost(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	stub.Close() // nothing listening anymore

	client := inference.NewClient(testConfig(stub.URL, ""))

	result, err := client.Forward(context.Background(), []byte(`{}`))
	assert.Error(t, err)
	assert.Nil(t, result)
}
