package routes

import (
	"github.com/gin-gonic/gin"

	"planttracker/internal/handlers"
)

type CareRoutes struct {
	handler *handlers.CareHandler
}

func NewCareRoutes(handler *handlers.CareHandler) *CareRoutes {
	return &CareRoutes{handler: handler}
}

func (r *CareRoutes) RegisterRoutes(router *gin.RouterGroup) {
	care := router.Group("/plants/:id/care")
	{
		care.GET("", r.handler.GetCare)
		care.POST("", r.handler.SaveCare)
		care.PUT("", r.handler.SaveCare)
		care.DELETE("", r.handler.DeleteCare)
	}
}
