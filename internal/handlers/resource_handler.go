package handlers

import (
	"net/http"
	"strconv"

	"netpoleon-site/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	resources *services.ResourceService
	featured  *services.FeaturedService
}

func NewResourceHandler(resources *services.ResourceService, featured *services.FeaturedService) *ResourceHandler {
	return &ResourceHandler{resources: resources, featured: featured}
}

// GetResources returns published resources filtered by optional search and
// type_id query parameters. Admin listings use GetAllResources instead.
func (h *ResourceHandler) GetResources(c *gin.Context) {
	h.listResources(c, true)
}

// GetAllResources returns every resource including drafts (admin only)
func (h *ResourceHandler) GetAllResources(c *gin.Context) {
	h.listResources(c, false)
}

func (h *ResourceHandler) listResources(c *gin.Context, publishedOnly bool) {
	filter := services.ResourceFilter{Search: c.Query("search")}
	if raw := c.Query("type_id"); raw != "" {
		typeID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_id"})
			return
		}
		id := uint(typeID)
		filter.TypeID = &id
	}

	resources, err := h.resources.ListResources(c.Request.Context(), publishedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resources"})
		return
	}

	filtered := services.FilterResources(resources, filter)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    filtered,
		"count":   len(filtered),
	})
}

// GetResourceByID returns a single resource
func (h *ResourceHandler) GetResourceByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resource, err := h.resources.GetResource(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resource"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resource,
	})
}

// GetResourceTypes returns the category lookup table
func (h *ResourceHandler) GetResourceTypes(c *gin.Context) {
	types, err := h.resources.ListResourceTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resource types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    types,
	})
}

// GetFeaturedResource returns the featured-resource rows (0 or 1)
func (h *ResourceHandler) GetFeaturedResource(c *gin.Context) {
	featured, err := h.featured.ListFeaturedResources(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured resource"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    featured,
	})
}

// CreateResource creates a new resource (admin only)
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var input services.ResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.resources.CreateResource(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    resource,
	})
}

// UpdateResource applies a partial update to a resource (admin only)
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update services.ResourceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.resources.UpdateResource(c.Request.Context(), id, update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resource,
	})
}

// DeleteResource removes a resource (admin only)
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.resources.DeleteResource(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resource"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleFeaturedResource flips whether a resource is the home-page feature
// (admin only)
func (h *ResourceHandler) ToggleFeaturedResource(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	nowFeatured, err := h.featured.ToggleFeaturedResource(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle featured resource"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"featured": nowFeatured,
	})
}
