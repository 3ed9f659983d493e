package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rsdhub/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)              // GET /events
	rg.GET("/:event_id", h.getByID) // GET /events/:event_id
}

// RegisterAdminRoutes hangs the destructive operations off the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/events/:event_id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	events, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": events, "total": len(events)})
}

func (h *Handler) getByID(c *gin.Context) {
	eventID := c.Param("event_id")
	e, err := h.Repo.Get(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"event": e,
		"label": models.EventLabel(e.EventID),
	})
}

func (h *Handler) remove(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, _, err := models.ParseEventID(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event id"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "event_id": eventID})
}
