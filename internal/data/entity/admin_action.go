package entity

import (
	"github.com/google/uuid"
)

// AdminAction is one audit-trail row; every admin mutation records one.
type AdminAction struct {
	BaseSimple
	AdminID  uuid.UUID `db:"admin_id"`
	Action   string    `db:"action"`
	TargetID string    `db:"target_id"`
}
