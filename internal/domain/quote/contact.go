package quote

import (
	"errors"
	"net/mail"
)

var (
	ErrNameTooShort          = errors.New("name must be at least 3 characters")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrPhoneTooShort         = errors.New("phone must be at least 8 characters")
	ErrPolicyNotAccepted     = errors.New("cancellation policy must be accepted")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrPaymentMethodRequired = errors.New("payment method is required")
)

const (
	MinNameLength  = 3
	MinPhoneLength = 8
)

type PaymentMethod string

const (
	PayOnlineGateway PaymentMethod = "online-gateway"
	PayBankTransfer  PaymentMethod = "bank-transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayOnlineGateway, PayBankTransfer:
		return true
	default:
		return false
	}
}

// Contact is collected only at checkout and never persisted in the draft
// once the booking is submitted.
type Contact struct {
	name          string
	email         string
	phone         string
	paymentMethod PaymentMethod
}

// NewContact validates the checkout form. The policy flag must already be
// true and a payment method chosen; both are required to submit.
func NewContact(name, email, phone string, acceptCancellationPolicy bool, method PaymentMethod) (Contact, error) {
	if len(name) < MinNameLength {
		return Contact{}, ErrNameTooShort
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Contact{}, ErrInvalidEmail
	}
	if len(phone) < MinPhoneLength {
		return Contact{}, ErrPhoneTooShort
	}
	if !acceptCancellationPolicy {
		return Contact{}, ErrPolicyNotAccepted
	}
	if method == "" {
		return Contact{}, ErrPaymentMethodRequired
	}
	if !method.IsValid() {
		return Contact{}, ErrInvalidPaymentMethod
	}

	return Contact{
		name:          name,
		email:         email,
		phone:         phone,
		paymentMethod: method,
	}, nil
}

// ReconstructContact rebuilds an already-validated value from storage.
func ReconstructContact(name, email, phone string, method PaymentMethod) Contact {
	return Contact{name: name, email: email, phone: phone, paymentMethod: method}
}

func (c Contact) Name() string                 { return c.name }
func (c Contact) Email() string                { return c.email }
func (c Contact) Phone() string                { return c.phone }
func (c Contact) PaymentMethod() PaymentMethod { return c.paymentMethod }
