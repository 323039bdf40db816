package controllers

import (
	"log/slog"
	"net/http"

	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/helpers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// CatalogPage is the paginated catalog response body.
// swagger:model CatalogPage
type CatalogPage struct {
	Items      []domain.CatalogEvent  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List the merged event catalog
// @Description Returns all events from both domains, university first then club, each tagged with its originating domain. A domain whose backend is unavailable contributes no entries; the response is never an error because of an upstream outage.
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.CatalogPage
// @Router /catalog [get]
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	items := c.Service.Catalog(r.Context())
	page, meta := helpers.Paginate(items, params)
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogPage{Items: page, Pagination: meta})
}

// Search godoc
// @Summary Search the merged event catalog
// @Description Returns catalog entries matching the term over title, location, and description.
// @Tags catalog
// @Produce json
// @Param search query string true "Search term"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.CatalogPage
// @Router /catalog/search [get]
func (c *CatalogController) Search(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	items := c.Service.Search(r.Context(), r.URL.Query().Get("search"))
	page, meta := helpers.Paginate(items, params)
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogPage{Items: page, Pagination: meta})
}
