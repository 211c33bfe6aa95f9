package routes

import (
	"os"
	"strings"

	"cleanplan-backend/config"
	"cleanplan-backend/controllers"
	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store *storage.Storage) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	authCtrl := controllers.NewAuthController(store)
	apartmentCtrl := controllers.NewApartmentController(store)
	employeeCtrl := controllers.NewEmployeeController(store)
	statsCtrl := controllers.NewStatsController(store)
	profileCtrl := controllers.NewProfileController(store)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authCtrl.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		apartments := api.Group("/apartments")
		{
			apartments.POST("", apartmentCtrl.CreateApartment)
			apartments.GET("", apartmentCtrl.GetApartments)
			apartments.GET("/:id", apartmentCtrl.GetApartment)
			apartments.PUT("/:id", apartmentCtrl.UpdateApartment)
			apartments.DELETE("/:id", apartmentCtrl.DeleteApartment)
		}

		employees := api.Group("/employees")
		{
			employees.POST("", employeeCtrl.CreateEmployee)
			employees.GET("", employeeCtrl.GetEmployees)
			employees.GET("/:id", employeeCtrl.GetEmployee)
			employees.DELETE("/:id", employeeCtrl.DeleteEmployee)
		}

		api.GET("/calendar/:year/:month", apartmentCtrl.GetApartmentsByMonth)
		api.GET("/calendar/:year/:month/:day", apartmentCtrl.GetApartmentsByDate)

		api.GET("/statistics", statsCtrl.GetStatistics)

		profile := api.Group("/profile")
		{
			profile.GET("", profileCtrl.GetProfile)
			profile.PUT("/theme", profileCtrl.UpdateTheme)
		}
	}

	return r
}
