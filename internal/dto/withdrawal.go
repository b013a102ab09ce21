package dto

type WithdrawalRequestDTO struct {
	Amount  float64 `json:"amount" validate:"required" example:"100"`
	Method  string  `json:"method" validate:"required" example:"card"`
	Address string  `json:"address" validate:"required" example:"4561261212345467"`
}

type WithdrawalResponseDTO struct {
	ID         int     `json:"id" example:"7"`
	Gross      float64 `json:"amount" example:"100"`
	Fee        float64 `json:"fee" example:"2.5"`
	Net        float64 `json:"net_amount" example:"97.5"`
	Method     string  `json:"method" example:"card"`
	Address    string  `json:"address" example:"4561261212345467"`
	Status     string  `json:"status" example:"pending"`
	Reason     string  `json:"reason,omitempty"`
	CreatedAt  string  `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
	ResolvedAt string  `json:"resolved_at,omitempty"`
}

type ResolveWithdrawalRequestDTO struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject" example:"approve"`
	Reason   string `json:"reason,omitempty" example:"address failed verification"`
}
