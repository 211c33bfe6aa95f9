package controllers

import (
	"errors"
	"net/http"

	"cleanplan-backend/models"
	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeController struct {
	store *storage.Storage
}

func NewEmployeeController(store *storage.Storage) *EmployeeController {
	return &EmployeeController{store: store}
}

type CreateEmployeeInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	employee := models.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := ctrl.store.CreateEmployee(userID, &employee); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (ctrl *EmployeeController) GetEmployees(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	opts := storage.ListEmployeeOptions{Search: c.Query("search")}

	employees, err := ctrl.store.ListEmployees(userID, opts)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ctrl *EmployeeController) GetEmployee(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	employee, err := ctrl.store.GetEmployee(userID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (ctrl *EmployeeController) DeleteEmployee(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	if err := ctrl.store.DeleteEmployee(userID, employeeID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
