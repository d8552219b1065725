package db

import (
	"context"
	"errors"

	"voyago/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
}

type PackageStore interface {
	FindAll(ctx context.Context) ([]models.Package, error)
	FindByID(ctx context.Context, id string) (*models.Package, error)
	Insert(ctx context.Context, p *models.Package) error
	Replace(ctx context.Context, p *models.Package) error
	Delete(ctx context.Context, id string) error
}

type ItineraryStore interface {
	FindByID(ctx context.Context, id string) (*models.Itinerary, error)
	// FindByUser returns the user's itineraries sorted newest-first.
	FindByUser(ctx context.Context, userID string) ([]models.Itinerary, error)
	Insert(ctx context.Context, it *models.Itinerary) error
	Replace(ctx context.Context, it *models.Itinerary) error
	Delete(ctx context.Context, id string) error
}

// Stores in use by the handler packages. Connect swaps in the mongo-backed
// implementations; tests substitute in-memory fakes.
var (
	Users       UserStore
	Packages    PackageStore
	Itineraries ItineraryStore
)
