package want

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rsdhub/internal/auth"
	"rsdhub/internal/cleaner"
	"rsdhub/pkg/models"
)

// ReleaseGetter looks up a catalog release so the want can snapshot its
// display fields at add time.
type ReleaseGetter interface {
	GetByID(ctx context.Context, id string) (*models.Release, error)
}

// Notifier pushes want changes out to the owner's connected devices.
type Notifier interface {
	WantUpserted(userID string, w models.Want)
	WantDeleted(userID, wantID string)
}

type Handler struct {
	Repo     *Repo
	Releases ReleaseGetter
	Notify   Notifier
}

func NewHandler(repo *Repo, releases ReleaseGetter, notify Notifier) *Handler {
	return &Handler{Repo: repo, Releases: releases, Notify: notify}
}

// RegisterRoutes expects rg to already carry the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wants", h.list)
	rg.POST("/wants", h.add)
	rg.PATCH("/wants/:want_id/status", h.updateStatus)
	rg.DELETE("/wants/:want_id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	wants, err := h.Repo.List(c.Request.Context(), claims.UserID, c.Query("event_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if wants == nil {
		wants = []models.Want{}
	}
	c.JSON(http.StatusOK, gin.H{"items": wants, "total": len(wants)})
}

type addRequest struct {
	ReleaseID string `json:"release_id" binding:"required"`
}

func (h *Handler) add(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "release_id is required"})
		return
	}

	rel, err := h.Releases.GetByID(c.Request.Context(), req.ReleaseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if rel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "release not found"})
		return
	}

	clean := cleaner.Reconcile(*rel)
	w := models.Want{
		WantID:      models.BuildWantID(clean.EventID, clean.ReleaseID),
		EventID:     clean.EventID,
		ReleaseID:   clean.ReleaseID,
		Artist:      clean.Artist,
		Title:       clean.Title,
		ImageURL:    clean.ImageURL,
		Format:      clean.Format,
		ReleaseType: clean.ReleaseType,
		Status:      models.WantStatusWanted,
	}

	if err := h.Repo.Upsert(c.Request.Context(), claims.UserID, w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), claims.UserID, w.WantID)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	if h.Notify != nil {
		h.Notify.WantUpserted(claims.UserID, *saved)
	}
	c.JSON(http.StatusCreated, gin.H{"want": saved})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidWantStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be WANTED or ACQUIRED"})
		return
	}

	w, err := h.Repo.UpdateStatus(c.Request.Context(), claims.UserID, c.Param("want_id"), req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if w == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Notify != nil {
		h.Notify.WantUpserted(claims.UserID, *w)
	}
	c.JSON(http.StatusOK, gin.H{"want": w})
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	wantID := c.Param("want_id")
	ok, err := h.Repo.Delete(c.Request.Context(), claims.UserID, wantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Notify != nil {
		h.Notify.WantDeleted(claims.UserID, wantID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "want_id": wantID})
}
