package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rishta_backend/internal/middleware"
	"rishta_backend/internal/services"
	"rishta_backend/internal/services/dto"
)

type DiscoveryHandler struct {
	*BaseHandler
	discoveryService services.DiscoveryService
	profileService   services.ProfileService
}

func NewDiscoveryHandler(
	base *BaseHandler,
	discoveryService services.DiscoveryService,
	profileService services.ProfileService,
) *DiscoveryHandler {
	return &DiscoveryHandler{
		BaseHandler:      base,
		discoveryService: discoveryService,
		profileService:   profileService,
	}
}

func (h *DiscoveryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	discovery := rg.Group("/discovery")
	discovery.Use(middleware.AuthMiddleware())
	{
		discovery.GET("/search", h.Search)
		discovery.GET("/compatibility/:userId", h.Compatibility)
	}
}

func (h *DiscoveryHandler) Search(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DiscoverRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	response, err := h.discoveryService.Discover(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Browsing counts as activity for the recently-active filter.
	_ = h.profileService.TouchLastActive(userID)

	c.JSON(http.StatusOK, response)
}

func (h *DiscoveryHandler) Compatibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.discoveryService.Compatibility(userID, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
