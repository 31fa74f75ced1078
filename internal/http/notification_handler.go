package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

type NotificationHandler struct {
	notifications repository.NotificationRepository
	timeout       time.Duration
}

func NewNotificationHandler(notifications repository.NotificationRepository, timeout time.Duration) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		timeout:       timeout,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	identity, _ := identityFromContext(r.Context())

	notifications, err := h.notifications.NotificationsByRecipient(ctx, identity.UID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "notifications_unavailable", "failed to load notifications")
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	err := h.notifications.MarkRead(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "notification not found")
			return
		}
		respondError(w, http.StatusBadGateway, "notifications_unavailable", "failed to mark notification read")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
