package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "pdb_testkey")
	return srv, client
}

func jsonResponse(data any) []byte {
	b, _ := json.Marshal(map[string]any{"data": data})
	return b
}

func TestClientSendsBearerAndJSONHeaders(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer pdb_testkey", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write(jsonResponse([]map[string]any{}))
	})

	_, err := client.ListReferences(RefTag)
	require.NoError(t, err)
}

func TestClientOmitsAuthorizationWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, "").ListReferences(RefTag)
	require.NoError(t, err)
}

func TestClientDecodesBarePayloads(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"PLA"},{"id":2,"name":"ABS"}]`))
	})

	refs, err := client.ListReferences(RefMaterial)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "ABS", refs[1].Name)
}

func TestClientTrimsTrailingSlashFromBaseURL(t *testing.T) {
	client := NewClient("http://example.test/", "")
	assert.Equal(t, "http://example.test", client.BaseURL())
}

func TestClientStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{"detail string", http.StatusNotFound, `{"detail":"Product not found"}`, ErrNotFound, "Product not found"},
		{"envelope", http.StatusConflict, `{"error":{"code":"duplicate","message":"name taken"}}`, ErrConflict, "name taken"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","name"],"msg":"field required"}]}`, ErrValidation, "name: field required"},
		{"bad request", http.StatusBadRequest, `{"detail":"Category required"}`, ErrValidation, "Category required"},
		{"server error", http.StatusInternalServerError, `boom`, ErrTransport, "HTTP 500: boom"},
		{"in use code", http.StatusBadRequest, `{"error":{"code":"in_use","message":"still referenced"}}`, ErrInUse, "still referenced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.SearchRecords("")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.msg, Message(err))

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "", time.Second).ListReferences(RefCategory)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientTimeout(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	})

	_, err := NewClient(client.BaseURL(), "", 20*time.Millisecond).ListReferences(RefTag)
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestClientMalformedResponse(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := client.ListReferences(RefTag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestBuildQuerySkipsEmptyValues(t *testing.T) {
	assert.Equal(t, "/products/", buildQuery("/products/", QueryParams{"q": ""}))
	assert.Equal(t, "/products/?q=red+vase", buildQuery("/products/", QueryParams{"q": "red vase"}))
}
