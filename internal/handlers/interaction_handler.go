package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rishta_backend/internal/middleware"
	"rishta_backend/internal/services"
	"rishta_backend/internal/services/dto"
)

type InteractionHandler struct {
	*BaseHandler
	interactionService services.InteractionService
}

func NewInteractionHandler(base *BaseHandler, interactionService services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		BaseHandler:        base,
		interactionService: interactionService,
	}
}

func (h *InteractionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	interactions := rg.Group("/interactions")
	interactions.Use(middleware.AuthMiddleware())
	{
		interactions.PUT("/decision", h.Decide)
		interactions.GET("/likers", h.ListLikers)
		interactions.GET("/likes/count", h.LikeCount)
		interactions.GET("/matches", h.ListMatches)
		interactions.DELETE("/matches/:userId", h.Unmatch)
	}
}

func (h *InteractionHandler) Decide(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.interactionService.Decide(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InteractionHandler) ListLikers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	response, err := h.interactionService.ListLikers(c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InteractionHandler) LikeCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.interactionService.LikeCount(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InteractionHandler) ListMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.interactionService.ListMatches(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InteractionHandler) Unmatch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.interactionService.Unmatch(userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unmatched"})
}
