package leaverequest

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	requests := r.Group("/leave-requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", idempotency, handler.Create)
		requests.GET("", handler.GetAll)
		requests.GET("/:id", handler.GetByID)
		requests.PUT("/:id", handler.Update)
		requests.DELETE("/:id", handler.Delete)

		requests.POST("/:id/submit", handler.Submit)
		requests.POST("/:id/approve", idempotency, handler.Approve)
		requests.POST("/:id/reject", idempotency, handler.Reject)
		requests.POST("/:id/cancel", idempotency, handler.Cancel)
	}
}
