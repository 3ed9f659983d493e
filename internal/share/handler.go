package share

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rsdhub/internal/auth"
	"rsdhub/pkg/models"
)

// UserSharing is the slice of the user store the share feature touches.
type UserSharing interface {
	SetSharing(ctx context.Context, uid string, shareID *string, enabled bool) error
}

// WantLister reads the owner's wants for the public share page.
type WantLister interface {
	List(ctx context.Context, userID, eventID string) ([]models.Want, error)
}

type Handler struct {
	Repo  *Repo
	Users UserSharing
	Wants WantLister
}

func NewHandler(repo *Repo, users UserSharing, wants WantLister) *Handler {
	return &Handler{Repo: repo, Users: users, Wants: wants}
}

// RegisterRoutes expects rg to already carry the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/share", h.enable)
	rg.PATCH("/share", h.update)
	rg.DELETE("/share", h.disable)
}

// RegisterPublicRoutes hangs the unauthenticated share page off the root.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/shared/:share_id", h.view)
}

type shareRequest struct {
	OwnerName string `json:"owner_name"`
	ListName  string `json:"list_name"`
}

func (h *Handler) enable(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = shareRequest{}
	}
	ownerName := strings.TrimSpace(req.OwnerName)
	if ownerName == "" {
		ownerName = claims.Username
	}
	listName := strings.TrimSpace(req.ListName)
	if listName == "" {
		listName = ownerName + "'s wants"
	}

	// Re-enabling keeps the existing link stable.
	existing, err := h.Repo.GetByOwner(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share lookup failed"})
		return
	}
	if existing != nil {
		if _, err := h.Repo.UpdateNames(c.Request.Context(), existing.ShareID, ownerName, listName); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "share update failed"})
			return
		}
		if err := h.Users.SetSharing(c.Request.Context(), claims.UserID, &existing.ShareID, true); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "share update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"share_id": existing.ShareID})
		return
	}

	shareID := uuid.NewString()
	s := models.ShareInfo{
		ShareID:   shareID,
		UID:       claims.UserID,
		OwnerName: ownerName,
		ListName:  listName,
	}
	if err := h.Repo.Create(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share create failed"})
		return
	}
	if err := h.Users.SetSharing(c.Request.Context(), claims.UserID, &shareID, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"share_id": shareID})
}

func (h *Handler) update(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	existing, err := h.Repo.GetByOwner(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share lookup failed"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sharing is not enabled"})
		return
	}

	ownerName := strings.TrimSpace(req.OwnerName)
	if ownerName == "" {
		ownerName = existing.OwnerName
	}
	listName := strings.TrimSpace(req.ListName)
	if listName == "" {
		listName = existing.ListName
	}

	if _, err := h.Repo.UpdateNames(c.Request.Context(), existing.ShareID, ownerName, listName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"share_id": existing.ShareID, "owner_name": ownerName, "list_name": listName})
}

func (h *Handler) disable(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Repo.DeleteByOwner(c.Request.Context(), claims.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share delete failed"})
		return
	}
	if err := h.Users.SetSharing(c.Request.Context(), claims.UserID, nil, false); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "disabled"})
}

func (h *Handler) view(c *gin.Context) {
	s, err := h.Repo.Get(c.Request.Context(), c.Param("share_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share lookup failed"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	wants, err := h.Wants.List(c.Request.Context(), s.UID, c.Query("event_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if wants == nil {
		wants = []models.Want{}
	}

	c.JSON(http.StatusOK, gin.H{
		"share": gin.H{
			"share_id":   s.ShareID,
			"owner_name": s.OwnerName,
			"list_name":  s.ListName,
		},
		"items": wants,
		"total": len(wants),
	})
}
