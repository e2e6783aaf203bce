package webclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dperussina/code-library/pkg/errors"
)

func newTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "hello")
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	})
	mux.HandleFunc("/throttled", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestGet(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client, err := New(nil)
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(resp.Body))
}

func TestGetStatusErrors(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client, err := New(nil)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.False(t, errors.IsRetryable(err))

	_, err = client.Get(context.Background(), srv.URL+"/throttled")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRateLimit))
	assert.True(t, errors.IsRetryable(err))

	_, err = client.Get(context.Background(), srv.URL+"/broken")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConnection))
}

func TestGetConnectionRefused(t *testing.T) {
	client, err := New(nil)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "http://127.0.0.1:1/unreachable")

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConnection))
}

func TestFetchAll(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client, err := New(nil)
	require.NoError(t, err)

	urls := []string{
		srv.URL + "/ok",
		srv.URL + "/missing",
		srv.URL + "/ok",
	}

	results := client.FetchAll(context.Background(), urls, 2)
	require.Len(t, results, 3)

	// Results are in input order
	assert.Equal(t, urls[0], results[0].URL)
	assert.Equal(t, http.StatusOK, results[0].StatusCode)
	assert.Equal(t, len("hello"), results[0].Size)

	// A failed fetch fills Err without aborting the rest
	assert.Equal(t, -1, results[1].StatusCode)
	require.Error(t, results[1].Err)
	assert.True(t, strings.Contains(results[1].Err.Error(), "404"))

	assert.Equal(t, http.StatusOK, results[2].StatusCode)
}
