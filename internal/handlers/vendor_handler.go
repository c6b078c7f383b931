package handlers

import (
	"net/http"

	"netpoleon-site/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VendorHandler struct {
	vendors *services.VendorService
}

func NewVendorHandler(vendors *services.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// GetVendors returns the vendor directory, filtered by optional search and
// category query parameters
func (h *VendorHandler) GetVendors(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	vendors, err := h.vendors.ListVendors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
		return
	}

	filtered := services.FilterVendors(vendors, search, category)
	// The database orders by name with its own collation; re-sort here so
	// the directory is alphabetical regardless of case.
	services.SortVendorsByName(filtered)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    filtered,
		"count":   len(filtered),
	})
}

// GetVendorByID returns a single vendor with its category labels split out
func (h *VendorHandler) GetVendorByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vendor, err := h.vendors.GetVendor(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vendor,
		"types":   services.SplitVendorTypes(vendor.Type),
	})
}

// CreateVendor creates a new vendor (admin only)
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var input services.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendors.CreateVendor(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    vendor,
	})
}

// UpdateVendor applies a partial update to a vendor (admin only)
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update services.VendorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendors.UpdateVendor(c.Request.Context(), id, update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vendor,
	})
}

// DeleteVendor removes a vendor (admin only)
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vendors.DeleteVendor(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
