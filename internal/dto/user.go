package dto

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,min=10,max=15"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=user manager admin"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"omitempty,min=3,max=32"`
	Phone string `json:"phone" binding:"omitempty,min=10,max=15"`
	Role  string `json:"role" binding:"omitempty,oneof=user manager admin"`
}

type ChangePasswordRequest struct {
	Password        string `json:"password" binding:"required,min=6,max=100"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

type ChangeOwnPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=6,max=100"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

type UpdateLoggedUserRequest struct {
	Name  string `json:"name" binding:"omitempty,min=3,max=32"`
	Phone string `json:"phone" binding:"omitempty,min=10,max=15"`
}

type AddAddressRequest struct {
	Alias      string `json:"alias" binding:"required"`
	Details    string `json:"details" binding:"required"`
	Phone      string `json:"phone" binding:"omitempty,min=10,max=15"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type AddToWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}
