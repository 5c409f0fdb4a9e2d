package thread

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"threadboard/internal/apperrors"
)

type Handler interface {
	ListThreads(c *gin.Context)
	CreateThread(c *gin.Context)
	GetThreadByID(c *gin.Context)
	DeleteThread(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

func (h *handler) ListThreads(c *gin.Context) {
	summaries, err := h.service.ListThreads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list threads"})
		return
	}
	if summaries == nil {
		summaries = []*ThreadSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	thread, err := h.service.CreateThread(c.Request.Context(), req.Title)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create thread"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": thread.ID, "title": thread.Title})
}

func (h *handler) GetThreadByID(c *gin.Context) {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid thread ID"})
		return
	}

	thread, err := h.service.GetThreadWithMessages(c.Request.Context(), threadID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get thread"})
		return
	}

	c.JSON(http.StatusOK, thread)
}

func (h *handler) DeleteThread(c *gin.Context) {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid thread ID"})
		return
	}

	if err := h.service.DeleteThread(c.Request.Context(), threadID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete thread"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
