package request

type RecordAdminActionRequest struct {
	Action   string `json:"action" validate:"required,min=2,max=100"`
	TargetID string `json:"target_id" validate:"required,min=1,max=100"`
}
