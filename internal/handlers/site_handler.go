package handlers

import (
	"net/http"

	"netpoleon-site/internal/services"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	site *services.SiteService
}

func NewSiteHandler(site *services.SiteService) *SiteHandler {
	return &SiteHandler{site: site}
}

// GetHome returns the cached home-page payload
func (h *SiteHandler) GetHome(c *gin.Context) {
	payload, err := h.site.GetHomePayload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch home content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payload,
	})
}

// GetTeamMembers returns the about-page team list
func (h *SiteHandler) GetTeamMembers(c *gin.Context) {
	members, err := h.site.ListTeamMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    members,
	})
}

// CreateTeamMember creates a new team member (admin only)
func (h *SiteHandler) CreateTeamMember(c *gin.Context) {
	var input services.TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.site.CreateTeamMember(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    member,
	})
}

// UpdateTeamMember applies a partial update to a team member (admin only)
func (h *SiteHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Position     *string `json:"position"`
		Bio          *string `json:"bio"`
		PhotoURL     *string `json:"photo_url"`
		DisplayOrder *int    `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	member, err := h.site.UpdateTeamMember(c.Request.Context(), id, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    member,
	})
}

// DeleteTeamMember removes a team member (admin only)
func (h *SiteHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.site.DeleteTeamMember(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSlides returns the hero slides. The public carousel gets active slides;
// admins pass ?all=true to include hidden ones.
func (h *SiteHandler) GetSlides(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	slides, err := h.site.ListSlides(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slides,
	})
}

// CreateSlide creates a new slide (admin only)
func (h *SiteHandler) CreateSlide(c *gin.Context) {
	var input services.SlideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slide, err := h.site.CreateSlide(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    slide,
	})
}

// UpdateSlide applies a partial update to a slide (admin only)
func (h *SiteHandler) UpdateSlide(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title        *string `json:"title"`
		Subtitle     *string `json:"subtitle"`
		ImageURL     *string `json:"image_url"`
		LinkURL      *string `json:"link_url"`
		DisplayOrder *int    `json:"display_order"`
		IsActive     *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.LinkURL != nil {
		updates["link_url"] = *req.LinkURL
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	slide, err := h.site.UpdateSlide(c.Request.Context(), id, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slide,
	})
}

// DeleteSlide removes a slide (admin only)
func (h *SiteHandler) DeleteSlide(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.site.DeleteSlide(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slide"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAnnouncement returns the announcement bar
func (h *SiteHandler) GetAnnouncement(c *gin.Context) {
	bar, err := h.site.GetAnnouncement(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bar,
	})
}

// SaveAnnouncement creates or replaces the announcement bar (admin only)
func (h *SiteHandler) SaveAnnouncement(c *gin.Context) {
	var input services.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bar, err := h.site.SaveAnnouncement(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bar,
	})
}
