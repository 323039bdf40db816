package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/controllers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/middleware"
	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	catalog *controllers.CatalogController,
	participation *controllers.ParticipationController,
	events *controllers.EventController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Catalog
	mux.HandleFunc("GET /catalog", catalog.List)
	mux.HandleFunc("GET /catalog/search", catalog.Search)

	// Participation
	mux.HandleFunc("GET /me/attending", requireAuth(participation.MyAttending))
	mux.HandleFunc("POST /events/{domain}/{eventID}/attendance", requireAuth(participation.Join))
	mux.HandleFunc("DELETE /events/{domain}/{eventID}/attendance", requireAuth(participation.Leave))
	mux.HandleFunc("PUT /events/{domain}/{eventID}/participants/{userID}/status", requireAuth(participation.SetStatus))

	// Events
	mux.HandleFunc("GET /events/{domain}/{eventID}", events.Get)
	mux.HandleFunc("POST /events/{domain}", requireAuth(events.Create))
	mux.HandleFunc("PUT /events/{domain}/{eventID}", requireAuth(events.Update))
	mux.HandleFunc("DELETE /events/{domain}/{eventID}", requireAuth(events.Delete))
	mux.HandleFunc("GET /events/{domain}/{eventID}/participants", events.Participants)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
