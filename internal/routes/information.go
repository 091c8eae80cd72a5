package routes

import (
	"github.com/gin-gonic/gin"

	"planttracker/internal/handlers"
)

type InformationRoutes struct {
	handler *handlers.InformationHandler
}

func NewInformationRoutes(handler *handlers.InformationHandler) *InformationRoutes {
	return &InformationRoutes{handler: handler}
}

func (r *InformationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	information := router.Group("/plants/:id/information")
	{
		information.GET("", r.handler.GetInformation)
		information.POST("", r.handler.SaveInformation)
		information.PUT("", r.handler.SaveInformation)
		information.DELETE("", r.handler.DeleteInformation)
	}
}
