package dto

type RegisterRequestDTO struct {
	Email        string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"firstname" example:"Alice"`
	LastName     string `json:"lastname" example:"Smith"`
	Phone        string `json:"phone" example:"+1 555 0100"`
	ReferralCode string `json:"referral_code,omitempty" example:"REF123456"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type VerifyOTPRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
	Code  string `json:"code" validate:"required,len=6" example:"482913"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
