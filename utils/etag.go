package utils

import (
	"crypto/sha1"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerateETag derives a strong ETag for a single document from its id and
// last change time.
func GenerateETag(id primitive.ObjectID, updatedAt time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%d", id.Hex(), updatedAt.UnixNano())))
	return fmt.Sprintf("\"%x\"", sum)
}

// DatasetETag derives an ETag for a whole collection snapshot from its size
// and the newest record timestamp. Any insert changes the size, so the pair
// identifies the dataset the stats were computed from.
func DatasetETag(count int, latest time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%d:%d", count, latest.UnixNano())))
	return fmt.Sprintf("\"%x\"", sum)
}
