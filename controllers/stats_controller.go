package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	models "github.com/Jigen0509/cheerain/models"
	repository "github.com/Jigen0509/cheerain/repository"
	stats "github.com/Jigen0509/cheerain/stats"
	utils "github.com/Jigen0509/cheerain/utils"
)

// fetchCheers pulls the full collection for a stats request. A failed
// fetch is logged and raises exactly one ops alert; the caller answers
// 503 and skips aggregation for this request.
func fetchCheers(c *gin.Context, src repository.CheerSource) ([]models.Cheer, bool) {
	cheers, err := src.FetchAll(c.Request.Context())
	if err != nil {
		// Client gone mid-fetch: drop the late result. Not a backend
		// failure, so no alert.
		if c.Request.Context().Err() != nil || errors.Is(err, context.Canceled) {
			c.Status(http.StatusRequestTimeout)
			return nil, false
		}

		log.Printf("Failed to fetch cheers: %v", err)
		if alertErr := utils.SendAlert(
			"cheerain: dashboard fetch failed",
			fmt.Sprintf("<p>Could not fetch the cheers collection: %v</p>", err),
		); alertErr != nil {
			log.Printf("Failed to send fetch alert: %v", alertErr)
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not fetch cheers"})
		return nil, false
	}

	// Client gone mid-fetch: drop the result instead of aggregating.
	if c.Request.Context().Err() != nil {
		c.Status(http.StatusRequestTimeout)
		return nil, false
	}

	return cheers, true
}

// setDatasetETag answers 304 when the caller already holds the stats for
// the current dataset. Returns true when the request is done.
func setDatasetETag(c *gin.Context, cheers []models.Cheer) bool {
	var latest time.Time
	for _, ch := range cheers {
		if ch.CreatedAt.After(latest) {
			latest = ch.CreatedAt
		}
	}

	etag := utils.DatasetETag(len(cheers), latest)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	c.Header("ETag", etag)
	if !latest.IsZero() {
		c.Header("Last-Modified", latest.UTC().Format(http.TimeFormat))
	}
	return false
}

// ---------------- DASHBOARD ----------------
func DashboardStats(src repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cheers, ok := fetchCheers(c, src)
		if !ok {
			return
		}

		if setDatasetETag(c, cheers) {
			return
		}

		c.JSON(http.StatusOK, stats.BuildDashboard(cheers))
	}
}

// ---------------- ATHLETE RANKING ----------------
func AthleteStats(src repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cheers, ok := fetchCheers(c, src)
		if !ok {
			return
		}

		if setDatasetETag(c, cheers) {
			return
		}

		c.JSON(http.StatusOK, stats.AthleteSummaries(cheers))
	}
}

// ---------------- METHOD BREAKDOWN ----------------
func MethodStats(src repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cheers, ok := fetchCheers(c, src)
		if !ok {
			return
		}

		if setDatasetETag(c, cheers) {
			return
		}

		c.JSON(http.StatusOK, stats.MethodSummaries(cheers))
	}
}

// ---------------- MONTHLY CHART ----------------
func MonthlyStats(src repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cheers, ok := fetchCheers(c, src)
		if !ok {
			return
		}

		if setDatasetETag(c, cheers) {
			return
		}

		c.JSON(http.StatusOK, stats.MonthlyBuckets(cheers))
	}
}

// ---------------- SNAPSHOT EXPORT ----------------
func ExportSnapshot(src repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cheers, ok := fetchCheers(c, src)
		if !ok {
			return
		}

		dashboard := stats.BuildDashboard(cheers)
		payload, err := json.Marshal(dashboard)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not serialize snapshot"})
			return
		}

		name := fmt.Sprintf("dashboard-%d", time.Now().Unix())
		url, err := utils.UploadSnapshot(bytes.NewReader(payload), name)
		if err != nil {
			log.Printf("Snapshot upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "snapshot upload failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "snapshot created",
			"name":    name,
			"url":     url,
		})
	}
}
