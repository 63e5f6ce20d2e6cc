package request

import (
	"strings"

	"soundlight-quotes/internal/domain/quote"
)

type EventDetailsRequest struct {
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Location   string `json:"location" binding:"required,min=3"`
	EventType  string `json:"event_type" binding:"required,oneof=wedding corporate party concert other"`
	GuestCount int    `json:"guest_count" binding:"required,min=10,max=1000"`
}

// ToDomain revalidates against the domain rules. today comes from the
// caller's clock so the today-or-future rule is not tied to server time
// inside the DTO.
func (r EventDetailsRequest) ToDomain(today quote.Date) (quote.EventDetails, error) {
	date, err := quote.ParseDate(r.Date)
	if err != nil {
		return quote.EventDetails{}, err
	}
	return quote.NewEventDetails(date, strings.TrimSpace(r.Location), quote.EventType(r.EventType), r.GuestCount, today)
}

type EquipmentRequest struct {
	DJ               bool   `json:"dj"`
	DJSchedule       string `json:"dj_schedule"`
	Sound            bool   `json:"sound"`
	SoundType        string `json:"sound_type" binding:"omitempty,oneof=basic standard outdoor"`
	Lighting         bool   `json:"lighting"`
	LightingType     string `json:"lighting_type" binding:"omitempty,oneof=standard professional"`
	LEDFloor         bool   `json:"led_floor"`
	ArchStructure    bool   `json:"arch_structure"`
	SpiderStructure  bool   `json:"spider_structure"`
	FogMachine       bool   `json:"fog_machine"`
	LEDDecoration    int    `json:"led_decoration" binding:"min=0"`
	WirelessMic      int    `json:"wireless_mic" binding:"min=0"`
	OutsideTransport bool   `json:"outside_transport"`
}

func (r EquipmentRequest) ToDomain() (quote.Equipment, error) {
	return quote.NewEquipment(quote.EquipmentSpec{
		DJ:               r.DJ,
		DJSchedule:       strings.TrimSpace(r.DJSchedule),
		Sound:            r.Sound,
		SoundType:        quote.SoundType(r.SoundType),
		Lighting:         r.Lighting,
		LightingType:     quote.LightingType(r.LightingType),
		LEDFloor:         r.LEDFloor,
		ArchStructure:    r.ArchStructure,
		SpiderStructure:  r.SpiderStructure,
		FogMachine:       r.FogMachine,
		LEDDecoration:    r.LEDDecoration,
		WirelessMic:      r.WirelessMic,
		OutsideTransport: r.OutsideTransport,
	})
}

type EditStepRequest struct {
	Step *int `json:"step" binding:"required,min=0,max=3"`
}

type SelectTierRequest struct {
	Tier string `json:"tier" binding:"required,oneof=basic standard premium"`
}

type CheckoutRequest struct {
	Name                     string `json:"name" binding:"required,min=3"`
	Email                    string `json:"email" binding:"required,email"`
	Phone                    string `json:"phone" binding:"required,min=8"`
	AcceptCancellationPolicy bool   `json:"accept_cancellation_policy"`
	PaymentMethod            string `json:"payment_method" binding:"required,oneof=online-gateway bank-transfer"`
}

func (r CheckoutRequest) ToDomain() (quote.Contact, error) {
	return quote.NewContact(
		strings.TrimSpace(r.Name),
		strings.TrimSpace(r.Email),
		strings.TrimSpace(r.Phone),
		r.AcceptCancellationPolicy,
		quote.PaymentMethod(r.PaymentMethod),
	)
}
