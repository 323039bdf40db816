package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":3,"prenom":"Amine","nom":"Ben Salah","email":"amine@univ.tn"}`))
	}))
	t.Cleanup(srv.Close)

	dir := NewHTTPDirectory(srv.URL, srv.Client())
	u, err := dir.GetUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: 3, FirstName: "Amine", LastName: "Ben Salah", Email: "amine@univ.tn"}, u)
}

func TestGetUser_TranslatedFieldNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"firstName":"Sami","lastName":"Trabelsi","email":"sami@univ.tn"}`))
	}))
	t.Cleanup(srv.Close)

	dir := NewHTTPDirectory(srv.URL, srv.Client())
	u, err := dir.GetUser(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Sami", u.FirstName)
	assert.Equal(t, int64(9), u.ID, "missing id falls back to the requested one")
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	dir := NewHTTPDirectory(srv.URL, srv.Client())
	_, err := dir.GetUser(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUser_CachesSuccessfulLookups(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"id":3,"prenom":"Amine"}`))
	}))
	t.Cleanup(srv.Close)

	dir := NewHTTPDirectory(srv.URL, srv.Client())
	for i := 0; i < 3; i++ {
		u, err := dir.GetUser(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Amine", u.FirstName)
	}
	assert.Equal(t, 1, hits)
}
