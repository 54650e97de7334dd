package routes

import (
	"wheelworks/internal/adapter/http/handlers"
	"wheelworks/internal/adapter/http/middleware"
	"wheelworks/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathAuth      = "/auth"
)

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, sessions usecase.ISessionUseCase) {
	dashboard := rg.Group(PathDashboard, middleware.RequireSession(sessions))
	{
		dashboard.GET("/overview", dashboardHandler.Overview)
		dashboard.GET("/quotes/:id", dashboardHandler.GetQuote)
		dashboard.PATCH("/quotes/:id/status", dashboardHandler.UpdateQuoteStatus)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, sessions usecase.ISessionUseCase) {
	auth := rg.Group(PathAuth)
	{
		// A valid session on the login endpoint bounces straight to the dashboard.
		auth.POST("/login", middleware.RedirectIfAuthenticated(sessions), authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}
