package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stackscout/stackscout/internal/middleware"
)

// NotificationHandler handles the authenticated user's notifications.
type NotificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService portssvc.NotificationSvcFacade) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// registerNotificationRoutes sets up the authenticated notification routes.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := NewNotificationHandler(notificationService)
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.POST("/read", h.MarkManyRead)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

// ListNotifications godoc
// @Summary List notifications
// @Description Lists the user's notifications newest first, with the unread
// counter.
// @Tags notifications
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, params.UnreadOnly, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list notifications")
		return
	}
	unreadCount, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to count unread notifications")
		return
	}

	resp := dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, len(notifications)),
		UnreadCount:   unreadCount,
	}
	for i := range notifications {
		resp.Notifications[i] = dto.ToNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkManyRead godoc
// @Summary Mark several notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.BatchMarkReadRequest true "Notification IDs"
// @Success 200 {object} map[string]int
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/read [post]
func (h *NotificationHandler) MarkManyRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.BatchMarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.notificationService.MarkManyRead(c.Request.Context(), userID, req.NotificationIDs)
	if err != nil {
		respondWithError(c, err, "Failed to mark notifications read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
