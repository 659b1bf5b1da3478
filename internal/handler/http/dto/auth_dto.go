package dto

// RegisterUserRequest is the payload for end-user registration.
type RegisterUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for login of either principal kind.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterPartnerRequest is the payload for food-partner registration.
type RegisterPartnerRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	ContactName  string `json:"contactName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}
