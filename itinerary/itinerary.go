package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"voyago/db"
	"voyago/globals"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler bundles the dependencies of the itinerary endpoints. The secret
// signs the verification payload embedded in exported PDFs.
type Handler struct {
	secret []byte
}

func NewHandler(cfg *globals.Config) *Handler {
	return &Handler{secret: cfg.JWTSecret}
}

type createRequest struct {
	Package    string                     `json:"package"`
	StartDate  time.Time                  `json:"startDate"`
	EndDate    time.Time                  `json:"endDate"`
	TotalPrice *float64                   `json:"totalPrice"`
	Activities []models.ScheduledActivity `json:"activities"`
	// A caller-supplied owner is ignored; the owner always comes from the
	// authenticated context.
	User string `json:"user"`
}

type updateRequest struct {
	Package    *string                     `json:"package"`
	StartDate  *time.Time                  `json:"startDate"`
	EndDate    *time.Time                  `json:"endDate"`
	Status     *string                     `json:"status"`
	TotalPrice *float64                    `json:"totalPrice"`
	Activities *[]models.ScheduledActivity `json:"activities"`
}

// POST /api/itineraries
func (h *Handler) CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var input createRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Package == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Package is required")
		return
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "Start and end dates are required")
		return
	}
	if input.TotalPrice == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Total price is required")
		return
	}

	activities := input.Activities
	if activities == nil {
		activities = []models.ScheduledActivity{}
	}

	it := &models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      userID,
		PackageID:   input.Package,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.StatusPlanning,
		Activities:  activities,
		TotalPrice:  *input.TotalPrice,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := db.Itineraries.Insert(ctx, it); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": it})
}

// PUT /api/itineraries/:id
func (h *Handler) UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := db.Itineraries.FindByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if existing.UserID != userID {
		utils.RespondWithError(w, http.StatusUnauthorized, "You do not have permission to update this itinerary")
		return
	}

	var input updateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Status != nil && !models.ValidStatus(*input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	if input.Package != nil {
		existing.PackageID = *input.Package
	}
	if input.StartDate != nil {
		existing.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		existing.EndDate = *input.EndDate
	}
	// Any of the four states may be set from any other; there is no
	// transition table.
	if input.Status != nil {
		existing.Status = *input.Status
	}
	if input.TotalPrice != nil {
		existing.TotalPrice = *input.TotalPrice
	}
	if input.Activities != nil {
		existing.Activities = *input.Activities
	}

	if err := db.Itineraries.Replace(ctx, existing); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": existing})
}

// DELETE /api/itineraries/:id
func (h *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		utils.RespondWithError(w, http.StatusUnauthorized, "You do not have permission to delete this itinerary")
		return
	}

	if err := db.Itineraries.Delete(ctx, it.ItineraryID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": utils.M{}})
}
