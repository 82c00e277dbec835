package request

import "ticket-booking/pkg/utils"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 20
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}
