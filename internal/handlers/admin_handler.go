package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rishta_backend/internal/middleware"
	"rishta_backend/internal/models"
	"rishta_backend/internal/services"
	"rishta_backend/internal/services/dto"
)

// AdminHandler covers the moderation queue and the admin console. The
// whole group requires at least the moderator role; user management and
// matching weights are admin only.
type AdminHandler struct {
	*BaseHandler
	moderationService    services.ModerationService
	userService          services.UserService
	matchSettingsService services.MatchSettingsService
}

func NewAdminHandler(
	base *BaseHandler,
	moderationService services.ModerationService,
	userService services.UserService,
	matchSettingsService services.MatchSettingsService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:          base,
		moderationService:    moderationService,
		userService:          userService,
		matchSettingsService: matchSettingsService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleModerator, models.UserRoleAdmin))
	{
		admin.GET("/reports", h.ListReports)
		admin.POST("/reports/:id/resolve", h.ResolveReport)
		admin.GET("/profiles/pending", h.ListPendingProfiles)
		admin.POST("/profiles/:userId/review", h.ReviewProfile)
		admin.POST("/profiles/:userId/verify", h.VerifyProfile)
		admin.DELETE("/profiles/:userId/verify", h.UnverifyProfile)
		admin.PUT("/users/:userId/status", h.SetUserStatus)

		adminOnly := admin.Group("")
		adminOnly.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			adminOnly.GET("/users", h.ListUsers)
			adminOnly.DELETE("/users/:userId", h.DeleteUser)
			adminOnly.GET("/matching/weights", h.GetWeights)
			adminOnly.PUT("/matching/weights", h.UpdateWeights)
		}
	}
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	status := models.ReportStatus(c.Query("status"))

	reports, err := h.moderationService.ListReports(status, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	moderatorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResolveReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.moderationService.ResolveReport(moderatorID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report resolved"})
}

func (h *AdminHandler) ListPendingProfiles(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	profiles, err := h.moderationService.ListPendingProfiles(pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *AdminHandler) ReviewProfile(c *gin.Context) {
	moderatorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.moderationService.ReviewProfile(moderatorID, c.Param("userId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile reviewed"})
}

func (h *AdminHandler) VerifyProfile(c *gin.Context) {
	if err := h.moderationService.VerifyProfile(c.Param("userId"), true); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile verified"})
}

func (h *AdminHandler) UnverifyProfile(c *gin.Context) {
	if err := h.moderationService.VerifyProfile(c.Param("userId"), false); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile verification removed"})
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	moderatorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.moderationService.SetUserStatus(moderatorID, c.Param("userId"), models.UserStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	users, total, err := h.userService.ListAll(pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(actorID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) GetWeights(c *gin.Context) {
	weights, err := h.matchSettingsService.GetWeights()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, weights)
}

func (h *AdminHandler) UpdateWeights(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWeightsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	weights, err := h.matchSettingsService.UpdateWeights(adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, weights)
}
