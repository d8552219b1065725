package models

import "time"

const (
	StatusPlanning  = "planning"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four itinerary states. There is
// no transition table: any owner may move between states freely, including
// backwards.
func ValidStatus(s string) bool {
	switch s {
	case StatusPlanning, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ScheduledActivity is one entry of an itinerary's schedule, referencing an
// activity of the booked package by name.
type ScheduledActivity struct {
	Activity      string     `json:"activity" bson:"activity"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty" bson:"scheduled_time,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Itinerary is a user's booking of a package. TotalPrice is supplied by the
// caller, never derived from the package.
type Itinerary struct {
	ItineraryID string              `json:"id" bson:"itineraryid"`
	UserID      string              `json:"user" bson:"user"`
	PackageID   string              `json:"package" bson:"package"`
	StartDate   time.Time           `json:"startDate" bson:"start_date"`
	EndDate     time.Time           `json:"endDate" bson:"end_date"`
	Status      string              `json:"status" bson:"status"`
	Activities  []ScheduledActivity `json:"activities" bson:"activities"`
	TotalPrice  float64             `json:"totalPrice" bson:"total_price"`
	CreatedAt   time.Time           `json:"createdAt" bson:"created_at"`
}

// ItineraryWithPackage swaps the package reference for the resolved document;
// the outer field shadows the embedded string id under the same JSON key. The
// owner reference stays the raw user id, as in list responses.
type ItineraryWithPackage struct {
	Itinerary
	Package *Package `json:"package"`
}

// PopulatedItinerary additionally swaps the owner reference for the resolved
// owner projection, for single-item detail responses.
type PopulatedItinerary struct {
	ItineraryWithPackage
	Owner *UserBrief `json:"user"`
}
