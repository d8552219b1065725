package models

import "time"

const (
	CategoryBeach    = "Beach & Sea"
	CategoryCultural = "Cultural & Historic"
)

func ValidCategory(c string) bool {
	return c == CategoryBeach || c == CategoryCultural
}

// GeoPoint is a GeoJSON point; coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

type Activity struct {
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Duration    int      `json:"duration" bson:"duration"`
	Location    GeoPoint `json:"location" bson:"location"`
}

// Package is a catalog travel offering. Packages are globally visible and
// owned by no user.
type Package struct {
	PackageID   string     `json:"id" bson:"packageid"`
	Name        string     `json:"name" bson:"name"`
	Category    string     `json:"category" bson:"category"`
	Description string     `json:"description" bson:"description"`
	Price       float64    `json:"price" bson:"price"`
	Duration    int        `json:"duration" bson:"duration"`
	Activities  []Activity `json:"activities" bson:"activities"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
}
