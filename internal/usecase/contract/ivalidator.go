package usecasecontract

// IValidator defines the interface for input validation.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
