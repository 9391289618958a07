package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cheer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteName   string             `bson:"athlete_name" json:"athlete_name"`
	SupporterName string             `bson:"supporter_name,omitempty" json:"supporter_name,omitempty"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	Amount        float64            `bson:"amount,omitempty" json:"amount"`
	PaymentMethod string             `bson:"payment_method,omitempty" json:"payment_method,omitempty"` // paypay, credit, cash, ...
	IsVenue       bool               `bson:"is_venue,omitempty" json:"is_venue"`
	NFTImageURL   string             `bson:"nft_image_url,omitempty" json:"nft_image_url,omitempty"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
