package layout

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.PUT("/threads/:id/layouts", handler.UpdateThreadLayouts)
	rg.DELETE("/threads/:id/layouts", handler.ClearThreadLayouts)
	rg.PATCH("/messages/:id/layout", handler.UpdateMessageLayout)
}
