package itinerary

import (
	"context"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/itineraries/my-plans
// The query is pre-scoped to the authenticated user, so no per-record
// ownership check is needed here.
func (h *Handler) MyPlans(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itineraries, err := db.Itineraries.FindByUser(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	populated := make([]models.ItineraryWithPackage, 0, len(itineraries))
	pkgCache := map[string]*models.Package{}
	for _, it := range itineraries {
		pkg, cached := pkgCache[it.PackageID]
		if !cached {
			// A missing package leaves the reference null; catalog deletes
			// do not cascade.
			pkg, _ = db.Packages.FindByID(ctx, it.PackageID)
			pkgCache[it.PackageID] = pkg
		}
		populated = append(populated, models.ItineraryWithPackage{Itinerary: it, Package: pkg})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(populated),
		"data":    populated,
	})
}

// GET /api/itineraries/:id
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	// httprouter cannot register the static my-plans path next to the :id
	// wildcard, so it is dispatched here.
	if ps.ByName("id") == "my-plans" {
		h.MyPlans(w, r, ps)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := db.Itineraries.FindByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if it.UserID != userID {
		utils.RespondWithError(w, http.StatusUnauthorized, "You do not have permission to view this itinerary")
		return
	}

	pkg, _ := db.Packages.FindByID(ctx, it.PackageID)

	var owner *models.UserBrief
	if u, err := db.Users.FindByID(ctx, it.UserID); err == nil {
		owner = &models.UserBrief{Name: u.Name, Email: u.Email}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data": models.PopulatedItinerary{
			ItineraryWithPackage: models.ItineraryWithPackage{Itinerary: *it, Package: pkg},
			Owner:                owner,
		},
	})
}
