package models

import "time"

type User struct {
	UserID       string    `json:"id" bson:"userid"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}

// UserBrief is the owner projection embedded in itinerary detail responses.
type UserBrief struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}
