package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type EventDetailsView struct {
	Date       string `json:"date"`
	Location   string `json:"location"`
	EventType  string `json:"event_type"`
	GuestCount int    `json:"guest_count"`
}

type EquipmentView struct {
	DJ               bool   `json:"dj"`
	DJSchedule       string `json:"dj_schedule,omitempty"`
	Sound            bool   `json:"sound"`
	SoundType        string `json:"sound_type,omitempty"`
	Lighting         bool   `json:"lighting"`
	LightingType     string `json:"lighting_type,omitempty"`
	LEDFloor         bool   `json:"led_floor"`
	ArchStructure    bool   `json:"arch_structure"`
	SpiderStructure  bool   `json:"spider_structure"`
	FogMachine       bool   `json:"fog_machine"`
	LEDDecoration    int    `json:"led_decoration"`
	WirelessMic      int    `json:"wireless_mic"`
	OutsideTransport bool   `json:"outside_transport"`
}

type LineItemView struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"`
}

type TierView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Deposit  int64    `json:"deposit"`
	Features []string `json:"features"`
}

type QuoteView struct {
	Basic    TierView `json:"basic"`
	Standard TierView `json:"standard"`
	Premium  TierView `json:"premium"`
}

// WizardView is the full session state the UI renders: current step, the
// accumulated draft, the priced selection, and the derived quote when the
// result step has been reached.
type WizardView struct {
	Step           int               `json:"step"`
	StepName       string            `json:"step_name"`
	Event          *EventDetailsView `json:"event,omitempty"`
	Equipment      *EquipmentView    `json:"equipment,omitempty"`
	LineItems      []LineItemView    `json:"line_items,omitempty"`
	EquipmentTotal int64             `json:"equipment_total"`
	Deposit        int64             `json:"deposit"`
	Quote          *QuoteView        `json:"quote,omitempty"`
	SelectedTier   string            `json:"selected_tier,omitempty"`
	CheckoutOpen   bool              `json:"checkout_open"`
	Completed      bool              `json:"completed"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference"`
	EventDate     string    `json:"event_date"`
	Location      string    `json:"location"`
	EventType     string    `json:"event_type"`
	GuestCount    int       `json:"guest_count"`
	TierID        string    `json:"tier_id"`
	TierName      string    `json:"tier_name"`
	TotalPrice    int64     `json:"total_price"`
	Deposit       int64     `json:"deposit"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}
