package entities

// ContactInfo identifies the person a reservation is submitted for.
// The phone number, when present, must be E.164 so the provider (and
// the Twilio notifier) accept it.
type ContactInfo struct {
	Email     string `validate:"required,email"`
	FirstName string `validate:"omitempty,max=100"`
	LastName  string `validate:"omitempty,max=100"`
	Phone     string `validate:"omitempty,e164"`
}
