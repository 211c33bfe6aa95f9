package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cleanplan-backend/routes"
	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	utils.InitLogger()

	dsn := fmt.Sprintf("file:cleanplan_api_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, storage.AutoMigrate(db))

	return routes.SetupRouter(storage.New(db))
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerTestUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupTestRouter(t)

	registerTestUser(t, router, "test@example.com")

	// Duplicate registration is rejected
	w := doJSON(t, router, "POST", "/auth/register", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the right password
	w = doJSON(t, router, "POST", "/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "test@example.com", user["email"])
	assert.NotContains(t, w.Body.String(), "password")

	// Wrong password
	w = doJSON(t, router, "POST", "/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIRequiresAuth(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/apartments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "GET", "/api/statistics", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApartmentLifecycle(t *testing.T) {
	router := setupTestRouter(t)
	token := registerTestUser(t, router, "owner@example.com")

	// Create an employee to assign
	w := doJSON(t, router, "POST", "/api/employees", token, map[string]string{
		"first_name": "Anna",
		"last_name":  "Bianchi",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var employee map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employee))
	employeeID := employee["id"].(string)

	// Create the apartment
	w = doJSON(t, router, "POST", "/api/apartments", token, map[string]interface{}{
		"name":          "Loft Centro",
		"cleaning_date": "2024-06-01",
		"start_time":    "09:30",
		"price":         85.0,
		"employee_ids":  []string{employeeID},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var apartment map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apartment))
	apartmentID := apartment["id"].(string)
	assert.Equal(t, "to_do", apartment["status"])
	assert.Equal(t, "unpaid", apartment["payment_status"])

	// Fetch it back with its employees
	w = doJSON(t, router, "GET", "/api/apartments/"+apartmentID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apartment))
	employees := apartment["employees"].([]interface{})
	require.Len(t, employees, 1)

	// Update replaces the assignment set
	w = doJSON(t, router, "PUT", "/api/apartments/"+apartmentID, token, map[string]interface{}{
		"name":           "Loft Centro Storico",
		"cleaning_date":  "2024-06-02",
		"status":         "done",
		"payment_status": "paid",
		"employee_ids":   []string{},
	})
	require.Equal(t, http.StatusOK, w.Code)
	apartment = nil // fresh unmarshal target: json.Unmarshal keeps stale keys in a reused map
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apartment))
	assert.Equal(t, "done", apartment["status"])
	assert.Empty(t, apartment["employees"])

	// Calendar views
	w = doJSON(t, router, "GET", "/api/calendar/2024/6", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(t, router, "GET", "/api/calendar/2024/6/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(t, router, "GET", "/api/calendar/2024/7", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)

	// Delete, then the fetch is a 404
	w = doJSON(t, router, "DELETE", "/api/apartments/"+apartmentID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "GET", "/api/apartments/"+apartmentID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApartmentValidation(t *testing.T) {
	router := setupTestRouter(t)
	token := registerTestUser(t, router, "owner@example.com")

	// Bad date format
	w := doJSON(t, router, "POST", "/api/apartments", token, map[string]interface{}{
		"name":          "Loft",
		"cleaning_date": "01-06-2024",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad time format
	w = doJSON(t, router, "POST", "/api/apartments", token, map[string]interface{}{
		"name":          "Loft",
		"cleaning_date": "2024-06-01",
		"start_time":    "9am",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price
	w = doJSON(t, router, "POST", "/api/apartments", token, map[string]interface{}{
		"name":          "Loft",
		"cleaning_date": "2024-06-01",
		"price":         -5.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown status
	w = doJSON(t, router, "POST", "/api/apartments", token, map[string]interface{}{
		"name":          "Loft",
		"cleaning_date": "2024-06-01",
		"status":        "maybe_later",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrossTenantAccessIsNotFound(t *testing.T) {
	router := setupTestRouter(t)
	ownerToken := registerTestUser(t, router, "owner@example.com")
	otherToken := registerTestUser(t, router, "other@example.com")

	w := doJSON(t, router, "POST", "/api/apartments", ownerToken, map[string]interface{}{
		"name":          "Private",
		"cleaning_date": "2024-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var apartment map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apartment))
	apartmentID := apartment["id"].(string)

	w = doJSON(t, router, "GET", "/api/apartments/"+apartmentID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateThemeReturnsSafeUser(t *testing.T) {
	router := setupTestRouter(t)
	token := registerTestUser(t, router, "owner@example.com")

	w := doJSON(t, router, "PUT", "/api/profile/theme", token, map[string]string{
		"theme_color": "120 50% 50%",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "120 50% 50%", user["theme_color"])
	assert.Equal(t, "owner@example.com", user["email"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestStatisticsEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	token := registerTestUser(t, router, "owner@example.com")

	for _, date := range []string{"2024-04-01", "2024-04-01", "2024-04-02"} {
		w := doJSON(t, router, "POST", "/api/apartments", token, map[string]interface{}{
			"name":          "Job",
			"cleaning_date": date,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, "GET", "/api/statistics", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(3), stats["totalOrders"])
	days := stats["busiestDays"].([]interface{})
	require.Len(t, days, 2)
	top := days[0].(map[string]interface{})
	assert.Equal(t, "2024-04-01", top["date"])
	assert.Equal(t, float64(2), top["count"])
}
