package response

import (
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsCovered bool      `json:"is_covered"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCourtView(v *queries.CourtView) (*CourtResponse, error) {
	var res CourtResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCourtViews(views []*queries.CourtView) ([]*CourtResponse, error) {
	res := make([]*CourtResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
