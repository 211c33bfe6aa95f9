package controllers

import (
	"errors"
	"net/http"

	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	store *storage.Storage
}

func NewProfileController(store *storage.Storage) *ProfileController {
	return &ProfileController{store: store}
}

type UpdateThemeInput struct {
	ThemeColor string `json:"theme_color" binding:"required"`
}

func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := ctrl.store.GetSafeUser(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ctrl *ProfileController) UpdateTheme(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input UpdateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctrl.store.UpdateUserTheme(userID, input.ThemeColor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found or update failed")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update theme")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
