package dto

type ProfileResponseDTO struct {
	ID               int     `json:"id" example:"42"`
	Email            string  `json:"email" example:"alice@example.com"`
	FirstName        string  `json:"firstname" example:"Alice"`
	LastName         string  `json:"lastname" example:"Smith"`
	Phone            string  `json:"phone" example:"+1 555 0100"`
	KycVerified      bool    `json:"kyc_verified" example:"false"`
	ReferralCode     string  `json:"referral_code" example:"REF123456"`
	Balance          float64 `json:"balance" example:"120.5"`
	ROIEarnings      float64 `json:"roi_earnings" example:"75"`
	ReferralEarnings float64 `json:"referral_earnings" example:"15"`
	CreatedAt        string  `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
}

type UpdateProfileRequestDTO struct {
	FirstName string `json:"firstname" validate:"required" example:"Alice"`
	LastName  string `json:"lastname" validate:"required" example:"Smith"`
	Phone     string `json:"phone,omitempty" example:"+1 555 0100"`
}

type ReferralInfoResponseDTO struct {
	Code     string               `json:"code" example:"REF123456"`
	Earnings float64              `json:"earnings" example:"15"`
	Count    int                  `json:"count" example:"3"`
	Referred []ReferredAccountDTO `json:"referred"`
}

type ReferredAccountDTO struct {
	Email    string `json:"email" example:"bob@example.com"`
	PlanID   string `json:"plan_id,omitempty" example:"PlanA"`
	JoinedAt string `json:"joined_at" example:"2026-01-09T16:09:57+03:00"`
}

type AccrualEventDTO struct {
	PlanID      string  `json:"plan_id" example:"PlanA"`
	FirstPeriod int     `json:"first_period" example:"1"`
	LastPeriod  int     `json:"last_period" example:"2"`
	Amount      float64 `json:"amount" example:"50"`
	CreatedAt   string  `json:"created_at" example:"2026-02-09T00:00:03+03:00"`
}

type ReferralCreditDTO struct {
	ReferredID  int     `json:"referred_id" example:"43"`
	PlanID      string  `json:"plan_id" example:"PlanA"`
	Source      string  `json:"source" example:"accrual"`
	PeriodIndex int     `json:"period_index" example:"2"`
	Amount      float64 `json:"amount" example:"5"`
	CreatedAt   string  `json:"created_at" example:"2026-02-09T00:00:03+03:00"`
}

type SetKycRequestDTO struct {
	Verified bool `json:"verified" example:"true"`
}

type AccountSummaryDTO struct {
	ID          int     `json:"id" example:"42"`
	Email       string  `json:"email" example:"alice@example.com"`
	KycVerified bool    `json:"kyc_verified" example:"true"`
	PlanID      string  `json:"plan_id,omitempty" example:"PlanA"`
	Balance     float64 `json:"balance" example:"120.5"`
	Flagged     bool    `json:"flagged" example:"false"`
	CreatedAt   string  `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
}

type PlanOverviewResponseDTO struct {
	TotalUsers      int                 `json:"total_users" example:"120"`
	ActivePlanCount int                 `json:"active_plans" example:"37"`
	TotalInvestment float64             `json:"total_investment" example:"24500"`
	Accounts        []AccountSummaryDTO `json:"accounts"`
}
