package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/Jigen0509/cheerain/config"
	models "github.com/Jigen0509/cheerain/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when a lookup id is not a valid ObjectID.
var ErrInvalidID = errors.New("invalid id")

type mongoAthleteSource struct {
	col *mongo.Collection
}

// NewAthleteSource builds the Mongo-backed athlete source.
func NewAthleteSource(cfg *config.Config) AthleteSource {
	return &mongoAthleteSource{
		col: cfg.MongoClient.Database(cfg.DBName).Collection("athletes"),
	}
}

func (s *mongoAthleteSource) ListAll(ctx context.Context) ([]models.Athlete, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not fetch athletes: %w", err)
	}

	var athletes []models.Athlete
	if err := cursor.All(ctx, &athletes); err != nil {
		return nil, fmt.Errorf("could not decode athletes: %w", err)
	}
	return athletes, nil
}

func (s *mongoAthleteSource) GetByID(ctx context.Context, hexID string) (*models.Athlete, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var athlete models.Athlete
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&athlete)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch athlete: %w", err)
	}
	return &athlete, nil
}
