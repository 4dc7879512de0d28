package rtdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(Conf{BaseURL: srv.URL}), srv
}

func TestGetDecodesDocument(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/menu/chickens/k1.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"Wings","stock":"12"}`))
	}))
	defer srv.Close()

	var doc map[string]string
	require.NoError(t, client.Get(context.Background(), "menu/chickens/k1", &doc))
	assert.Equal(t, "Wings", doc["name"])
	assert.Equal(t, "12", doc["stock"])
}

func TestGetAbsentNodeIsNotAnError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	var doc map[string]string
	require.NoError(t, client.Get(context.Background(), "menu", &doc))
	assert.Nil(t, doc)
}

func TestPushReturnsStoreAssignedKey(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/menu/beverages.json", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cola", body["name"])

		_, _ = w.Write([]byte(`{"name":"-NxAbCd123"}`))
	}))
	defer srv.Close()

	key, err := client.Push(context.Background(), "menu/beverages", map[string]string{"name": "Cola"})
	require.NoError(t, err)
	assert.Equal(t, "-NxAbCd123", key)
}

func TestPushWithoutKeyFails(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := client.Push(context.Background(), "menu/beverages", map[string]string{"name": "Cola"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key")
}

func TestPatchSendsMerge(t *testing.T) {
	var method, path string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, client.Patch(context.Background(), "menu/chickens/k1", map[string]string{"name": "Thighs"}))
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/menu/chickens/k1.json", path)
}

func TestDeleteAbsentPathIsNoOp(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	require.NoError(t, client.Delete(context.Background(), "menu/chickens/nope"))
}

func TestNon2xxSurfacesStatus(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Permission denied"}`))
	}))
	defer srv.Close()

	err := client.Get(context.Background(), "menu", &map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Permission denied")
}

func TestAuthTokenAttached(t *testing.T) {
	var token string
	client := NewClient(Conf{AuthToken: "secret"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = r.URL.Query().Get("auth")
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()
	client.http.SetBaseURL(srv.URL)

	require.NoError(t, client.Get(context.Background(), "menu", &map[string]string{}))
	assert.Equal(t, "secret", token)
}
