package release

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rsdhub/internal/cleaner"
	"rsdhub/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events/:event_id/releases", h.listByEvent)
	rg.GET("/releases/:release_id", h.getByID)
}

func (h *Handler) listByEvent(c *gin.Context) {
	q := ListQuery{
		EventID: c.Param("event_id"),
		Q:       c.Query("q"),
		Format:  c.Query("format"),
		Limit:   intQuery(c, "limit", 50),
		Offset:  intQuery(c, "offset", 0),
	}

	if _, _, err := models.ParseEventID(q.EventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event id"})
		return
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	total, err := h.Repo.Count(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	items, err := h.Repo.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	for i := range items {
		items[i] = cleaner.Reconcile(items[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	rel, err := h.Repo.GetByID(c.Request.Context(), c.Param("release_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if rel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	clean := cleaner.Reconcile(*rel)

	var prose, trackList *string
	if clean.Description != nil {
		prose, trackList = cleaner.SplitDescription(*clean.Description)
	}

	c.JSON(http.StatusOK, gin.H{
		"release":    clean,
		"prose":      prose,
		"track_list": trackList,
	})
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
