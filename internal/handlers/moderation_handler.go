package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rishta_backend/internal/middleware"
	"rishta_backend/internal/services"
	"rishta_backend/internal/services/dto"
)

// ModerationHandler exposes the member-facing safety endpoints. The
// moderator queue lives on AdminHandler.
type ModerationHandler struct {
	*BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       base,
		moderationService: moderationService,
	}
}

func (h *ModerationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	safety := rg.Group("/safety")
	safety.Use(middleware.AuthMiddleware())
	{
		safety.POST("/blocks", h.Block)
		safety.DELETE("/blocks/:userId", h.Unblock)
		safety.GET("/blocks", h.ListBlocks)
		safety.POST("/reports", h.Report)
	}
}

func (h *ModerationHandler) Block(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BlockRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.moderationService.Block(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User blocked"})
}

func (h *ModerationHandler) Unblock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.moderationService.Unblock(userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User unblocked"})
}

func (h *ModerationHandler) ListBlocks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	blocks, err := h.moderationService.ListBlocks(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

func (h *ModerationHandler) Report(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.moderationService.Report(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted"})
}
