package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type AdminActionResponse struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"admin_id"`
	Action    string    `json:"action"`
	TargetID  string    `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

func AdminActionToResponse(action *entity.AdminAction) AdminActionResponse {
	return AdminActionResponse{
		ID:        action.ID.String(),
		AdminID:   action.AdminID.String(),
		Action:    action.Action,
		TargetID:  action.TargetID,
		CreatedAt: action.CreatedAt,
	}
}
