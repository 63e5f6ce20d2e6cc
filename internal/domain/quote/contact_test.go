//go:build unit

package quote_test

import (
	"testing"

	"soundlight-quotes/internal/domain/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	type args struct {
		name   string
		email  string
		phone  string
		policy bool
		method quote.PaymentMethod
	}
	validArgs := args{
		name:   "Maria Gomez",
		email:  "maria@example.com",
		phone:  "+54 11 5555-0101",
		policy: true,
		method: quote.PayOnlineGateway,
	}

	cases := []struct {
		name   string
		mutate func(*args)
		errIs  error
	}{
		{name: "valid online gateway", mutate: func(*args) {}},
		{name: "valid bank transfer", mutate: func(a *args) { a.method = quote.PayBankTransfer }},
		{name: "name too short", mutate: func(a *args) { a.name = "Mo" }, errIs: quote.ErrNameTooShort},
		{name: "bad email", mutate: func(a *args) { a.email = "not-an-email" }, errIs: quote.ErrInvalidEmail},
		{name: "phone too short", mutate: func(a *args) { a.phone = "5550" }, errIs: quote.ErrPhoneTooShort},
		{name: "policy not accepted", mutate: func(a *args) { a.policy = false }, errIs: quote.ErrPolicyNotAccepted},
		{name: "payment method missing", mutate: func(a *args) { a.method = "" }, errIs: quote.ErrPaymentMethodRequired},
		{name: "payment method unknown", mutate: func(a *args) { a.method = "cash" }, errIs: quote.ErrInvalidPaymentMethod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validArgs
			tc.mutate(&a)

			ct, err := quote.NewContact(a.name, a.email, a.phone, a.policy, a.method)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, a.name, ct.Name())
			assert.Equal(t, a.method, ct.PaymentMethod())
		})
	}
}
