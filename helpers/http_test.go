package helpers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchPageSetsBrowserHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.Equal(t, "en,en-US;q=0,5", r.Header.Get("Accept-Language"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>Hello, World!</body></html>"))
	}))
	defer server.Close()

	reader, err := FetchPage(context.Background(), server.URL)
	assert.NoError(t, err)

	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Hello, World!")
}

func TestFetchPageAcceptedStatusCodes(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusNonAuthoritativeInfo} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte("<html><body>ok</body></html>"))
		}))

		reader, err := FetchPage(context.Background(), server.URL)
		assert.NoError(t, err, "status %d should be accepted", code)

		body, err := io.ReadAll(reader)
		assert.NoError(t, err)
		assert.Equal(t, "<html><body>ok</body></html>", string(body))

		server.Close()
	}
}

func TestFetchPageUnexpectedStatusCodes(t *testing.T) {
	for _, code := range []int{http.StatusNoContent, http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		_, err := FetchPage(context.Background(), server.URL)
		assert.Error(t, err, "status %d should be rejected", code)
		assert.Contains(t, err.Error(), "unexpected status code")

		server.Close()
	}
}

func TestFetchPageFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>moved here</body></html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	reader, err := FetchPage(context.Background(), server.URL+"/old")
	assert.NoError(t, err)

	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "moved here")
}

func TestFetchPageNonUTF8(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.WriteHeader(http.StatusOK)
		// "Café" with a latin-1 encoded é
		w.Write([]byte("<html><body>Caf\xe9</body></html>"))
	}))
	defer server.Close()

	reader, err := FetchPage(context.Background(), server.URL)
	assert.NoError(t, err)

	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Café")
}

func TestFetchPageInvalidURL(t *testing.T) {
	_, err := FetchPage(context.Background(), "http://invalid.url.that.does.not.exist")
	assert.Error(t, err)
}
