// Package repository reads the cheerain collections. The dashboard treats
// the database as an opaque source: one read returns the full collection,
// no filtering or pagination.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/Jigen0509/cheerain/config"
	models "github.com/Jigen0509/cheerain/models"
)

const fetchTimeout = 10 * time.Second

// CheerSource returns every cheer on record, in source order.
type CheerSource interface {
	FetchAll(ctx context.Context) ([]models.Cheer, error)
}

// AthleteSource returns athlete profiles.
type AthleteSource interface {
	ListAll(ctx context.Context) ([]models.Athlete, error)
	GetByID(ctx context.Context, hexID string) (*models.Athlete, error)
}

type mongoCheerSource struct {
	col *mongo.Collection
}

// NewCheerSource builds the Mongo-backed cheer source.
func NewCheerSource(cfg *config.Config) CheerSource {
	return &mongoCheerSource{
		col: cfg.MongoClient.Database(cfg.DBName).Collection("cheers"),
	}
}

func (s *mongoCheerSource) FetchAll(ctx context.Context) ([]models.Cheer, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not fetch cheers: %w", err)
	}

	var cheers []models.Cheer
	if err := cursor.All(ctx, &cheers); err != nil {
		return nil, fmt.Errorf("could not decode cheers: %w", err)
	}
	return cheers, nil
}
