package dto

type PlanDTO struct {
	ID           string  `json:"id" example:"PlanA"`
	Name         string  `json:"name" example:"Plan A"`
	Price        float64 `json:"price" example:"500"`
	Rate         float64 `json:"roi_rate" example:"0.05"`
	Periods      int     `json:"periods" example:"5"`
	ReferralRate float64 `json:"referral_rate" example:"0.01"`
}

type PurchaseRequestDTO struct {
	PlanID string `json:"plan_id" validate:"required" example:"PlanA"`
}

type PurchaseResponseDTO struct {
	TxID       string `json:"tx_id" example:"inv_9f1c2d"`
	PaymentURL string `json:"payment_url" example:"https://pay.example.com/inv_9f1c2d"`
}

type PaymentWebhookDTO struct {
	TxID       string  `json:"tx_id" validate:"required" example:"inv_9f1c2d"`
	AccountID  int     `json:"account_id" validate:"required" example:"42"`
	PlanID     string  `json:"plan_id" validate:"required" example:"PlanA"`
	PaidAmount float64 `json:"paid_amount" validate:"required" example:"500"`
}

type PurchaseHistoryDTO struct {
	TxID        string  `json:"tx_id" example:"inv_9f1c2d"`
	PlanID      string  `json:"plan_id" example:"PlanA"`
	PaidAmount  float64 `json:"paid_amount" example:"500"`
	Status      string  `json:"status" example:"confirmed"`
	CreatedAt   string  `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
	ConfirmedAt string  `json:"confirmed_at,omitempty" example:"2026-01-09T16:12:03+03:00"`
}

type ActivePlanResponseDTO struct {
	HasPlan       bool    `json:"has_plan" example:"true"`
	Status        string  `json:"status" example:"active"`
	PlanID        string  `json:"plan_id,omitempty" example:"PlanA"`
	Price         float64 `json:"price,omitempty" example:"500"`
	DaysRemaining int     `json:"days_remaining,omitempty" example:"93"`
	TotalEarned   float64 `json:"total_earned" example:"75"`
	Balance       float64 `json:"balance" example:"120.5"`
}
