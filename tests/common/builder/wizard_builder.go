//go:build unit || e2e

package builder

import (
	"time"

	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
	reqdto "soundlight-quotes/internal/handler/dto/request"
	"soundlight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
)

type WizardBuilder struct {
	EventDate    string
	Location     string
	EventType    string
	GuestCount   int
	DJ           bool
	DJSchedule   string
	Sound        bool
	SoundType    string
	Lighting     bool
	LightingType string
	SelectedTier string
}

func NewWizardBuilder() *WizardBuilder {
	return &WizardBuilder{
		EventDate:    "2030-11-21",
		Location:     "Palermo, Buenos Aires",
		EventType:    "wedding",
		GuestCount:   120,
		DJ:           true,
		DJSchedule:   quote.NightSchedule,
		Sound:        true,
		SoundType:    "standard",
		SelectedTier: "standard",
	}
}

func (b *WizardBuilder) With(mutate func(*WizardBuilder)) *WizardBuilder {
	mutate(b)
	return b
}

func (b *WizardBuilder) BuildEventRequestDTO() reqdto.EventDetailsRequest {
	return reqdto.EventDetailsRequest{
		Date:       b.EventDate,
		Location:   b.Location,
		EventType:  b.EventType,
		GuestCount: b.GuestCount,
	}
}

func (b *WizardBuilder) BuildEquipmentRequestDTO() reqdto.EquipmentRequest {
	return reqdto.EquipmentRequest{
		DJ:           b.DJ,
		DJSchedule:   b.DJSchedule,
		Sound:        b.Sound,
		SoundType:    b.SoundType,
		Lighting:     b.Lighting,
		LightingType: b.LightingType,
	}
}

func (b *WizardBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Name:                     "Maria Gomez",
		Email:                    "maria@example.com",
		Phone:                    "+54 11 5555-0101",
		AcceptCancellationPolicy: true,
		PaymentMethod:            "online-gateway",
	}
}

// BuildMachine walks a real machine to the result step using this
// builder's data.
func (b *WizardBuilder) BuildMachine(calc *quote.Calculator) (*wizard.Machine, error) {
	date, err := quote.ParseDate(b.EventDate)
	if err != nil {
		return nil, err
	}
	ev, err := quote.NewEventDetails(date, b.Location, quote.EventType(b.EventType), b.GuestCount, quote.NewDate(2026, time.January, 1))
	if err != nil {
		return nil, err
	}
	eq, err := quote.NewEquipment(quote.EquipmentSpec{
		DJ:           b.DJ,
		DJSchedule:   b.DJSchedule,
		Sound:        b.Sound,
		SoundType:    quote.SoundType(b.SoundType),
		Lighting:     b.Lighting,
		LightingType: quote.LightingType(b.LightingType),
	})
	if err != nil {
		return nil, err
	}

	m := wizard.NewMachine()
	if err := m.UpdateEvent(ev); err != nil {
		return nil, err
	}
	if err := m.UpdateEquipment(eq); err != nil {
		return nil, err
	}
	if err := m.Next(calc); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *WizardBuilder) BuildWizardView() *queries.WizardView {
	return &queries.WizardView{
		Step:     int(wizard.StepResult),
		StepName: wizard.StepResult.String(),
		Event: &queries.EventDetailsView{
			Date:       b.EventDate,
			Location:   b.Location,
			EventType:  b.EventType,
			GuestCount: b.GuestCount,
		},
		Equipment: &queries.EquipmentView{
			DJ:         b.DJ,
			DJSchedule: b.DJSchedule,
			Sound:      b.Sound,
			SoundType:  b.SoundType,
		},
		EquipmentTotal: 210000,
		Deposit:        105000,
		Quote: &queries.QuoteView{
			Basic:    queries.TierView{ID: "basic", Name: "Basic", Price: 210000, Deposit: 105000},
			Standard: queries.TierView{ID: "standard", Name: "Standard", Price: 252000, Deposit: 126000},
			Premium:  queries.TierView{ID: "premium", Name: "Premium", Price: 315000, Deposit: 157500},
		},
		SelectedTier: b.SelectedTier,
		CheckoutOpen: true,
	}
}

func (b *WizardBuilder) BuildBookingView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		Reference:     "SL-0007",
		EventDate:     b.EventDate,
		Location:      b.Location,
		EventType:     b.EventType,
		GuestCount:    b.GuestCount,
		TierID:        b.SelectedTier,
		TierName:      "Standard",
		TotalPrice:    252000,
		Deposit:       126000,
		ContactName:   "Maria Gomez",
		ContactEmail:  "maria@example.com",
		ContactPhone:  "+54 11 5555-0101",
		PaymentMethod: "online-gateway",
		CreatedAt:     time.Now(),
	}
}
