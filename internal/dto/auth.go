package dto

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed JWT on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest creates a new account together with its employee profile.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Password  string `json:"password" binding:"required,min=8"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Title     string `json:"title"`
	Role      string `json:"role" binding:"omitempty,oneof=hr employee"`
	VisaClass string `json:"visaClass" binding:"omitempty,visaclass"`
}
