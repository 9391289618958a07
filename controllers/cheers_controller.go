package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "github.com/Jigen0509/cheerain/models"
	repository "github.com/Jigen0509/cheerain/repository"
)

// ---------------- LIST ----------------
func ListCheers(src repository.CheerSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cheers, ok := fetchCheers(c, src)
		if !ok {
			return
		}

		if len(cheers) == 0 {
			c.JSON(http.StatusOK, []models.Cheer{})
			return
		}

		if setDatasetETag(c, cheers) {
			return
		}

		c.JSON(http.StatusOK, cheers)
	}
}
