package routes

import (
	"voyago/auth"
	"voyago/itinerary"
	"voyago/middleware"
	"voyago/packages"
	"voyago/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler, ts *middleware.TokenService) {
	router.POST("/api/itineraries", ts.Authenticate(h.CreateItinerary))
	// GET :id also serves /my-plans; httprouter cannot register the static
	// segment next to the wildcard.
	router.GET("/api/itineraries/:id", ts.Authenticate(h.GetItinerary))
	router.GET("/api/itineraries/:id/pdf", ts.Authenticate(h.ExportPDF))
	router.PUT("/api/itineraries/:id", ts.Authenticate(h.UpdateItinerary))
	router.DELETE("/api/itineraries/:id", ts.Authenticate(h.DeleteItinerary))
}

func AddPackageRoutes(router *httprouter.Router) {
	router.GET("/api/packages", packages.GetPackages)
	router.GET("/api/packages/:id", packages.GetPackage)
	router.POST("/api/packages", packages.CreatePackage)
	router.PUT("/api/packages/:id", packages.UpdatePackage)
	router.DELETE("/api/packages/:id", packages.DeletePackage)
}
