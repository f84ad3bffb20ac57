package services

import (
	"encoding/json"
	"time"

	"rishta_backend/internal/logger"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type NotificationService interface {
	// Notify persists an in-app notification. Failures are logged, not
	// returned: a missing notification never fails the operation that
	// produced it.
	Notify(userID, notifType, title, message string, data map[string]string)

	List(userID string, unreadOnly bool, limit, offset int) (*dto.NotificationsResponse, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error

	// DeleteOldRead drops read notifications created before the cutoff.
	// Run by the notification worker.
	DeleteOldRead(before time.Time) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) Notify(userID, notifType, title, message string, data map[string]string) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err == nil {
			notification.Data = raw
		}
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.WithError(err).Error("failed to create notification",
			"user_id", userID, "type", notifType)
	}
}

func (s *NotificationServiceImpl) List(userID string, unreadOnly bool, limit, offset int) (*dto.NotificationsResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.NotificationsResponse{
		Notifications: make([]dto.NotificationDTO, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, dto.NewNotificationDTO(&notifications[i]))
	}
	return resp, nil
}

func (s *NotificationServiceImpl) MarkRead(userID, notificationID string) error {
	err := s.notificationRepo.MarkRead(notificationID, userID, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) DeleteOldRead(before time.Time) (int64, error) {
	return s.notificationRepo.DeleteOld(before)
}
