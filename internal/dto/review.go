package dto

import (
	"time"

	"storefront/internal/domain"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewRequest struct {
	Name     string `json:"name" validate:"min=2,max=150"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Text     string `json:"text" validate:"min=10,max=5000"`
	Approved *bool  `json:"approved,omitempty"`
}

type ReviewPatchRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Text     *string `json:"text,omitempty" validate:"omitempty,min=10,max=5000"`
	Approved *bool   `json:"approved,omitempty"`
}

func NewReviewResponse(r domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Rating:    r.Rating,
		Text:      r.Text,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
	}
}

func NewReviewListResponse(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewResponse(r))
	}
	return out
}
