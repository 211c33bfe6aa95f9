package controllers

import (
	"net/http"

	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	store *storage.Storage
}

func NewStatsController(store *storage.Storage) *StatsController {
	return &StatsController{store: store}
}

// GetStatistics returns the user's aggregate summary: total jobs, top
// employees and busiest cleaning dates.
func (ctrl *StatsController) GetStatistics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	stats, err := ctrl.store.GetStatistics(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
