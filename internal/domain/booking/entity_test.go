//go:build unit

package booking_test

import (
	"testing"
	"time"

	"soundlight-quotes/internal/domain/booking"
	"soundlight-quotes/internal/domain/quote"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "SL-0001", booking.FormatReference(1))
	assert.Equal(t, "SL-0007", booking.FormatReference(7))
	assert.Equal(t, "SL-0123", booking.FormatReference(123))
	// Width grows past four digits instead of truncating.
	assert.Equal(t, "SL-12345", booking.FormatReference(12345))
}

func TestNew(t *testing.T) {
	today := quote.NewDate(2026, time.January, 1)
	ev, err := quote.NewEventDetails(quote.NewDate(2026, time.October, 3), "Tigre", quote.EventWedding, 150, today)
	require.NoError(t, err)
	eq, err := quote.NewEquipment(quote.EquipmentSpec{Sound: true})
	require.NoError(t, err)
	ct, err := quote.NewContact("Sofia Ruiz", "sofia@example.com", "+54 11 2222-3344", true, quote.PayBankTransfer)
	require.NoError(t, err)

	tier := quote.Tier{Name: "Standard", Price: 252000}

	t.Run("valid booking", func(t *testing.T) {
		b, err := booking.New(&ev, &eq, ct, quote.TierStandard, tier, 126000)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, quote.Money(252000), b.TotalPrice())
		assert.Equal(t, quote.Money(126000), b.Deposit())
		assert.Equal(t, "Standard", b.TierName())
		assert.Empty(t, b.Reference(), "reference is assigned on insert")
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := booking.New(nil, &eq, ct, quote.TierStandard, tier, 126000)
		assert.ErrorIs(t, err, booking.ErrMissingEvent)
	})

	t.Run("missing equipment", func(t *testing.T) {
		_, err := booking.New(&ev, nil, ct, quote.TierStandard, tier, 126000)
		assert.ErrorIs(t, err, booking.ErrMissingEquipment)
	})

	t.Run("negative amounts", func(t *testing.T) {
		_, err := booking.New(&ev, &eq, ct, quote.TierStandard, quote.Tier{Name: "Broken", Price: -1}, 0)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)

		_, err = booking.New(&ev, &eq, ct, quote.TierStandard, tier, -10)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}
