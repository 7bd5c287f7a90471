package routes

import (
	"stockmaster/controllers"
	"stockmaster/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/login", controllers.Login)

		authed := api.Group("", middleware.RequireLogin())
		{
			authed.POST("/logout", controllers.Logout)
			authed.GET("/session", controllers.CurrentSession)

			// Movement log routes (append and read only; the log is immutable)
			authed.POST("/transactions", controllers.CreateStockTransaction)
			authed.GET("/transactions", controllers.ListStockTransactions)

			// Derived inventory routes
			authed.GET("/inventory", controllers.GetInventory)
			authed.GET("/inventory/low-stock", controllers.GetLowStockAlerts)
			authed.GET("/inventory/detail", controllers.GetProductDetail)
			authed.GET("/inventory/export", controllers.ExportInventoryCSV)

			authed.GET("/dashboard", controllers.GetDashboardSummary)

			// Party summary routes
			authed.GET("/reports/customers", controllers.GetCustomerReport)
			authed.GET("/reports/customers/export", controllers.ExportCustomerReportCSV)
			authed.GET("/reports/customers/detail", controllers.GetCustomerDetail)
			authed.GET("/reports/customers/detail/export", controllers.ExportCustomerDetailCSV)

			authed.POST("/insights", controllers.GenerateInsights)

			// User management (admin only)
			admin := authed.Group("/users", middleware.RequireAdmin())
			{
				admin.GET("", controllers.ListUsers)
				admin.POST("", controllers.CreateUser)
				admin.DELETE("/:id", controllers.DeleteUser)
			}
		}
	}
}
