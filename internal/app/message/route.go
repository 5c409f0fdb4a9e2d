package message

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	messages := rg.Group("/messages")
	{
		messages.POST("", handler.CreateMessage)
		messages.DELETE("/:id", handler.DeleteMessage)
	}
}
