package dto

type SignupRequest struct {
	Name            string `json:"name" binding:"required,min=3,max=32"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"omitempty,min=10,max=15"`
	Password        string `json:"password" binding:"required,min=6,max=100"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetCodeRequest struct {
	ResetCode string `json:"reset_code" binding:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=100"`
}
