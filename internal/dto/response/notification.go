package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Type      entity.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	ReadAt    *time.Time              `json:"read_at,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Type:      n.Type,
		Message:   n.Message,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
