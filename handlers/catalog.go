package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookeasy/models"
	"bookeasy/services/catalog"
)

// CatalogHandler exposes the wizard's browse endpoints.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger}
}

// ListBranches handles GET /api/branches.
func (h *CatalogHandler) ListBranches(c *gin.Context) {
	branches, err := h.CatalogSvc.ListBranches()
	if err != nil {
		h.Logger.Error("ListBranches: failed to fetch branches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch branches"})
		return
	}
	if branches == nil {
		branches = []models.Branch{}
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// ListBranchServices handles GET /api/branches/:id/services.
func (h *CatalogHandler) ListBranchServices(c *gin.Context) {
	branchID := c.Param("id")
	services, err := h.CatalogSvc.ListServicesForBranch(branchID)
	if err != nil {
		h.Logger.Error("ListBranchServices: failed to fetch services",
			zap.String("branchId", branchID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListStaff handles GET /api/staff?serviceId=...&branchId=...
func (h *CatalogHandler) ListStaff(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId query parameter is required"})
		return
	}
	branchID := c.Query("branchId")

	staff, err := h.CatalogSvc.ListStaffForService(serviceID, branchID)
	if err != nil {
		h.Logger.Error("ListStaff: failed to fetch staff",
			zap.String("serviceId", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch staff"})
		return
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
