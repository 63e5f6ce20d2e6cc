//go:build unit

package repository

import (
	"testing"
	"time"

	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRecordRoundTrip(t *testing.T) {
	today := quote.NewDate(2026, time.February, 1)
	ev, err := quote.NewEventDetails(quote.NewDate(2026, time.November, 21), "San Telmo, Buenos Aires", quote.EventConcert, 300, today)
	require.NoError(t, err)

	eq, err := quote.NewEquipment(quote.EquipmentSpec{
		DJ:            true,
		DJSchedule:    quote.NightSchedule,
		Sound:         true,
		SoundType:     quote.SoundOutdoor,
		LEDDecoration: 8,
	})
	require.NoError(t, err)

	ct := quote.ReconstructContact("Pedro Diaz", "pedro@example.com", "+54 11 3333-8811", quote.PayOnlineGateway)

	snap := wizard.Snapshot{
		Step:         wizard.StepResult,
		Event:        &ev,
		Equipment:    &eq,
		Contact:      &ct,
		Revision:     7,
		SelectedTier: quote.TierPremium,
		CheckoutOpen: true,
	}

	restored, err := fromRecord(toRecord(snap))
	require.NoError(t, err)
	assert.Equal(t, snap, *restored)
}

func TestDraftRecordPartial(t *testing.T) {
	t.Run("step-one-only snapshot", func(t *testing.T) {
		today := quote.NewDate(2026, time.February, 1)
		ev, err := quote.NewEventDetails(quote.NewDate(2026, time.May, 9), "Cordoba", quote.EventOther, 50, today)
		require.NoError(t, err)

		snap := wizard.Snapshot{Step: wizard.StepEquipment, Event: &ev, Revision: 1}
		restored, err := fromRecord(toRecord(snap))
		require.NoError(t, err)
		assert.Equal(t, snap, *restored)
		assert.Nil(t, restored.Equipment)
		assert.Nil(t, restored.Contact)
	})

	t.Run("unparseable stored date surfaces an error", func(t *testing.T) {
		rec := draftRecord{
			Step:  int(wizard.StepEquipment),
			Event: &eventRecord{Date: "21/11/2026", Location: "Rosario", EventType: "party", GuestCount: 40},
		}
		_, err := fromRecord(rec)
		assert.Error(t, err)
	})
}
