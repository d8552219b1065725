// Unauthenticated catalog CRUD. Packages carry no owner and no access
// control; itineraries reference them by id.
package packages

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

type packageRequest struct {
	Name        *string            `json:"name"`
	Category    *string            `json:"category"`
	Description *string            `json:"description"`
	Price       *float64           `json:"price"`
	Duration    *int               `json:"duration"`
	Activities  *[]models.Activity `json:"activities"`
}

// GET /api/packages
func GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	packages, err := db.Packages.FindAll(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching packages")
		return
	}
	if packages == nil {
		packages = []models.Package{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(packages),
		"data":    packages,
	})
}

// GET /api/packages/:id
func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pkg, err := db.Packages.FindByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": pkg})
}

// POST /api/packages
func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input packageRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Name == nil || *input.Name == "" ||
		input.Category == nil || input.Description == nil || *input.Description == "" ||
		input.Price == nil || input.Duration == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !models.ValidCategory(*input.Category) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package category")
		return
	}
	if *input.Price <= 0 || *input.Duration <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price and duration must be positive")
		return
	}

	activities := []models.Activity{}
	if input.Activities != nil {
		activities = *input.Activities
	}

	pkg := &models.Package{
		PackageID:   "p" + utils.GetUUID(),
		Name:        *input.Name,
		Category:    *input.Category,
		Description: *input.Description,
		Price:       *input.Price,
		Duration:    *input.Duration,
		Activities:  activities,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := db.Packages.Insert(ctx, pkg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating package")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": pkg})
}

// PUT /api/packages/:id
func UpdatePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pkg, err := db.Packages.FindByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}

	var input packageRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Category != nil && !models.ValidCategory(*input.Category) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package category")
		return
	}
	if input.Price != nil && *input.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must be positive")
		return
	}
	if input.Duration != nil && *input.Duration <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Duration must be positive")
		return
	}

	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Category != nil {
		pkg.Category = *input.Category
	}
	if input.Description != nil {
		pkg.Description = *input.Description
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Duration != nil {
		pkg.Duration = *input.Duration
	}
	if input.Activities != nil {
		pkg.Activities = *input.Activities
	}

	if err := db.Packages.Replace(ctx, pkg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating package")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": pkg})
}

// DELETE /api/packages/:id
// Does not cascade: itineraries referencing the package keep a dangling id.
func DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := db.Packages.Delete(ctx, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": utils.M{}})
}
