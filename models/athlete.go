package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Athlete struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Team        string             `bson:"team,omitempty" json:"team,omitempty"`
	Sport       string             `bson:"sport,omitempty" json:"sport,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`

	// Enriched fields
	CheerCount int     `json:"cheer_count,omitempty" bson:"-"`
	CheerTotal float64 `json:"cheer_total,omitempty" bson:"-"`
}
