package dto

import (
	"encoding/json"
	"time"

	"rishta_backend/internal/models"
)

// NotificationDTO - one in-app notification.
type NotificationDTO struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	IsRead    bool              `json:"is_read"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewNotificationDTO maps a notification model to its transport shape.
func NewNotificationDTO(n *models.Notification) NotificationDTO {
	var data map[string]string
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}
	return NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// NotificationsResponse - a page of notifications plus the unread badge.
type NotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int64             `json:"unread_count"`
}
