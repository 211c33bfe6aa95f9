package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cleanplan-backend/models"
	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApartmentController struct {
	store *storage.Storage
}

func NewApartmentController(store *storage.Storage) *ApartmentController {
	return &ApartmentController{store: store}
}

// ApartmentInput defines the expected JSON structure for creating or updating
// an apartment. Updates replace the full record, so the same shape serves
// both.
type ApartmentInput struct {
	Name          string      `json:"name" binding:"required"`
	CleaningDate  string      `json:"cleaning_date" binding:"required"`
	StartTime     *string     `json:"start_time"`
	Status        string      `json:"status" binding:"omitempty,oneof=to_do in_progress done"`
	PaymentStatus string      `json:"payment_status" binding:"omitempty,oneof=unpaid paid"`
	Notes         *string     `json:"notes"`
	Price         *float64    `json:"price" binding:"omitempty,min=0"`
	EmployeeIDs   []uuid.UUID `json:"employee_ids"`
}

func (in *ApartmentInput) validate() string {
	if !utils.ValidateDate(in.CleaningDate) {
		return "cleaning_date must be in YYYY-MM-DD format"
	}
	if in.StartTime != nil && !utils.ValidateTime(*in.StartTime) {
		return "start_time must be in HH:MM format"
	}
	return ""
}

func (in *ApartmentInput) toModel() models.Apartment {
	status := in.Status
	if status == "" {
		status = models.StatusToDo
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentUnpaid
	}
	return models.Apartment{
		Name:          in.Name,
		CleaningDate:  in.CleaningDate,
		StartTime:     in.StartTime,
		Status:        status,
		PaymentStatus: paymentStatus,
		Notes:         in.Notes,
		Price:         in.Price,
	}
}

// CreateApartment creates a new cleaning job with its employee assignments
func (ctrl *ApartmentController) CreateApartment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input ApartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg := input.validate(); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	apartment := input.toModel()
	if err := ctrl.store.CreateApartment(userID, &apartment, input.EmployeeIDs); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create apartment")
		return
	}

	c.JSON(http.StatusCreated, apartment)
}

// GetApartments lists the user's apartments, optionally filtered and sorted
func (ctrl *ApartmentController) GetApartments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	opts := storage.ListApartmentOptions{
		SortBy: c.Query("sortBy"),
		Search: c.Query("search"),
	}

	apartments, err := ctrl.store.ListApartments(userID, opts)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve apartments")
		return
	}

	c.JSON(http.StatusOK, apartments)
}

// GetApartment retrieves a single apartment with its assigned employees
func (ctrl *ApartmentController) GetApartment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	apartmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid apartment ID format")
		return
	}

	apartment, err := ctrl.store.GetApartment(userID, apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Apartment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// UpdateApartment rewrites an apartment and replaces its assignment set
func (ctrl *ApartmentController) UpdateApartment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	apartmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid apartment ID format")
		return
	}

	var input ApartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg := input.validate(); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	data := input.toModel()
	apartment, err := ctrl.store.UpdateApartment(userID, apartmentID, &data, input.EmployeeIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Apartment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update apartment")
		}
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// DeleteApartment removes an apartment and its assignments
func (ctrl *ApartmentController) DeleteApartment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	apartmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid apartment ID format")
		return
	}

	if err := ctrl.store.DeleteApartment(userID, apartmentID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete apartment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Apartment deleted successfully"})
}

// GetApartmentsByMonth lists the apartments of one calendar month
func (ctrl *ApartmentController) GetApartmentsByMonth(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	apartments, err := ctrl.store.ListApartmentsByMonth(userID, year, month)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve apartments")
		return
	}

	c.JSON(http.StatusOK, apartments)
}

// GetApartmentsByDate lists the apartments of one calendar day
func (ctrl *ApartmentController) GetApartmentsByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > 31 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid day")
		return
	}

	apartments, err := ctrl.store.ListApartmentsByDate(userID, year, month, day)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve apartments")
		return
	}

	c.JSON(http.StatusOK, apartments)
}

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
		return 0, 0, false
	}
	return year, time.Month(month), true
}
