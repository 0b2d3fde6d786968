package request

import (
	"court-booking/internal/usecase/commands"
)

type CourtRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	IsCovered bool   `json:"is_covered"`
}

func (r *CourtRequest) ToInput() commands.CourtInput {
	return commands.CourtInput{
		Name:      r.Name,
		IsCovered: r.IsCovered,
	}
}
