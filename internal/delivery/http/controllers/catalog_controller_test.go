package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

func catalogFixture(n int) []domain.CatalogEvent {
	items := make([]domain.CatalogEvent, n)
	for i := range items {
		items[i] = domain.CatalogEvent{
			ID:     int64(i + 1),
			Title:  "Event",
			Domain: domain.DomainUniversity,
		}
	}
	return items
}

func TestCatalogList(t *testing.T) {
	c := NewCatalogController(testLogger(), &fakeCatalog{items: catalogFixture(3)})

	rec := httptest.NewRecorder()
	c.List(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page CatalogPage
	require.Nil(t, decodeEnvelope(t, rec, &page))
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Pagination.TotalItems)
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestCatalogList_Paginates(t *testing.T) {
	c := NewCatalogController(testLogger(), &fakeCatalog{items: catalogFixture(45)})

	rec := httptest.NewRecorder()
	c.List(rec, httptest.NewRequest(http.MethodGet, "/catalog?page=2&page_size=20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page CatalogPage
	require.Nil(t, decodeEnvelope(t, rec, &page))
	require.Len(t, page.Items, 20)
	assert.Equal(t, int64(21), page.Items[0].ID)
	assert.Equal(t, 45, page.Pagination.TotalItems)
}

func TestCatalogList_PageBeyondEnd(t *testing.T) {
	c := NewCatalogController(testLogger(), &fakeCatalog{items: catalogFixture(3)})

	rec := httptest.NewRecorder()
	c.List(rec, httptest.NewRequest(http.MethodGet, "/catalog?page=9", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page CatalogPage
	require.Nil(t, decodeEnvelope(t, rec, &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Pagination.TotalItems)
}

func TestCatalogSearch(t *testing.T) {
	c := NewCatalogController(testLogger(), &fakeCatalog{items: catalogFixture(1)})

	rec := httptest.NewRecorder()
	c.Search(rec, httptest.NewRequest(http.MethodGet, "/catalog/search?search=forum", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page CatalogPage
	require.Nil(t, decodeEnvelope(t, rec, &page))
	assert.Len(t, page.Items, 1)
}
