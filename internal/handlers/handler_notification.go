package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// notificationHandler handles the authenticated user's notification feed.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers the notification routes.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.list)
		notifications.POST("/mark-read", h.markRead)
	}
}

// list godoc
// @Summary List notifications
// @Description Retrieves recent notifications plus the unread count
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum entries (default 50)"
// @Param unread query bool false "Only unread entries"
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) list(c *gin.Context) {
	username, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	unreadOnly := c.Query("unread") == "true"

	notifications, unread, err := h.notificationService.ListNotifications(c.Request.Context(), username, limit, unreadOnly)
	if err != nil {
		respondServiceError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications, unread))
}

// markRead godoc
// @Summary Mark notifications read
// @Description Marks the given notifications, or all unread ones, as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param payload body dto.MarkNotificationsReadRequest true "IDs or markAllAsRead"
// @Success 200 {object} dto.MarkNotificationsReadResponse
// @Security BearerAuth
// @Router /notifications/mark-read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	var req dto.MarkNotificationsReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	modified, err := h.notificationService.MarkRead(c.Request.Context(), username, req.NotificationIDs, req.MarkAllAsRead)
	if err != nil {
		respondServiceError(c, err, "Failed to mark notifications read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkNotificationsReadResponse{Success: true, ModifiedCount: modified})
}
