package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	models "github.com/Jigen0509/cheerain/models"
	repository "github.com/Jigen0509/cheerain/repository"
	stats "github.com/Jigen0509/cheerain/stats"
	utils "github.com/Jigen0509/cheerain/utils"
)

// cheerTotalsByName indexes the athlete ranking by name so profiles can be
// enriched without refetching per athlete.
func cheerTotalsByName(cheers []models.Cheer) map[string]models.AthleteSummary {
	byName := make(map[string]models.AthleteSummary)
	for _, s := range stats.AthleteSummaries(cheers) {
		byName[s.Name] = s
	}
	return byName
}

// ---------------- LIST ----------------
func ListAthletes(athletes repository.AthleteSource, cheers repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := athletes.ListAll(c.Request.Context())
		if err != nil {
			log.Printf("Failed to fetch athletes: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not fetch athletes"})
			return
		}

		if len(profiles) == 0 {
			c.JSON(http.StatusOK, []models.Athlete{})
			return
		}

		// Enrich profiles with cheer totals; listing still works when the
		// cheers fetch fails, just without the totals.
		if all, err := cheers.FetchAll(c.Request.Context()); err != nil {
			log.Printf("Skipping cheer enrichment: %v", err)
		} else {
			byName := cheerTotalsByName(all)
			for i := range profiles {
				if s, ok := byName[profiles[i].Name]; ok {
					profiles[i].CheerCount = s.Count
					profiles[i].CheerTotal = s.Total
				}
			}
		}

		// --- Pick the most recently updated profile for caching headers ---
		latest := profiles[0]
		for _, a := range profiles {
			if a.UpdatedAt.After(latest.UpdatedAt) {
				latest = a
			}
		}

		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, profiles)
	}
}

// ---------------- GET ----------------
func GetAthlete(athletes repository.AthleteSource, cheers repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := athletes.GetByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
			return
		}
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid athlete id"})
			return
		}
		if err != nil {
			log.Printf("Failed to fetch athlete: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not fetch athlete"})
			return
		}

		if all, err := cheers.FetchAll(c.Request.Context()); err != nil {
			log.Printf("Skipping cheer enrichment: %v", err)
		} else {
			if s, ok := cheerTotalsByName(all)[profile.Name]; ok {
				profile.CheerCount = s.Count
				profile.CheerTotal = s.Total
			}
		}

		etag := utils.GenerateETag(profile.ID, profile.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, profile)
	}
}
