package entitlement

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	entitlements := r.Group("/entitlements")
	entitlements.Use(middleware.AuthMiddleware())
	{
		entitlements.GET("", handler.GetAll)
		entitlements.POST("/carry-over", middleware.RoleMiddleware("hr", "admin"), handler.RunCarryOver)
	}
}
