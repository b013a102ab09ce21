package dto

type ReviewRequestDTO struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Title  string `json:"title,omitempty" example:"Solid returns"`
	Body   string `json:"body" validate:"required" example:"Payouts arrived on schedule every month."`
}

type ReviewResponseDTO struct {
	ID        int    `json:"id" example:"3"`
	AccountID int    `json:"account_id" example:"42"`
	Rating    int    `json:"rating" example:"5"`
	Title     string `json:"title" example:"Solid returns"`
	Body      string `json:"body" example:"Payouts arrived on schedule every month."`
	CreatedAt string `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
	UpdatedAt string `json:"updated_at" example:"2026-01-09T16:09:57+03:00"`
}
