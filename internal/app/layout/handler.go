package layout

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	UpdateThreadLayouts(c *gin.Context)
	ClearThreadLayouts(c *gin.Context)
	UpdateMessageLayout(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

func (h *handler) UpdateThreadLayouts(c *gin.Context) {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid thread ID"})
		return
	}

	var req UpdateThreadLayoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "layouts object is required"})
		return
	}

	if err := h.service.UpdateThreadLayouts(c.Request.Context(), threadID, req.Layouts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update layouts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) ClearThreadLayouts(c *gin.Context) {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid thread ID"})
		return
	}

	if err := h.service.ClearThreadLayouts(c.Request.Context(), threadID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear layouts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) UpdateMessageLayout(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message ID"})
		return
	}

	var req UpdateMessageLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateMessageLayout(c.Request.Context(), messageID, req.LayoutData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update layout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
