package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yukirp/NutriEmp/controllers"
	"github.com/Yukirp/NutriEmp/middlewares"
	"github.com/Yukirp/NutriEmp/services"
	"github.com/Yukirp/NutriEmp/storage"
)

// SetupRouter wires the storage into services and controllers and mounts
// the API. The store is injected so tests run against a fresh in-memory
// one and production can run on Postgres without touching call sites.
func SetupRouter(store storage.Storage, log *zap.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	userSvc := services.NewUserService(store)
	mealSvc := services.NewMealService(store)
	foodSvc := services.NewFoodService(store)
	contactSvc := services.NewContactService(store)
	reportSvc := services.NewReportService(store)

	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc, userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	contactCtl := controllers.NewContactController(contactSvc)
	reportCtl := controllers.NewReportController(reportSvc, userSvc)

	api := r.Group("/api")
	{
		api.POST("/users", userCtl.Create)
		api.GET("/users/:id", userCtl.Get)
		api.PATCH("/users/:id", userCtl.Update)
		api.GET("/users/:id/meals", mealCtl.ListForUser)
		api.GET("/users/:id/summary", reportCtl.Daily)
		api.GET("/users/:id/reports/weekly", reportCtl.Weekly)
		api.GET("/users/:id/metrics", userCtl.Metrics)

		api.POST("/meals", mealCtl.Create)
		api.GET("/meals/:id", mealCtl.Get)
		api.PATCH("/meals/:id", mealCtl.Update)
		api.DELETE("/meals/:id", mealCtl.Delete)

		api.POST("/foods", foodCtl.Create)
		api.GET("/foods", foodCtl.List)

		api.POST("/contact", contactCtl.Create)
	}

	return r
}
