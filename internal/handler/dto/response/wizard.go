package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"soundlight-quotes/internal/pkg/currency"
	"soundlight-quotes/internal/usecase/queries"
)

type TierResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int64    `json:"price"`
	PriceDisplay   string   `json:"price_display"`
	Deposit        int64    `json:"deposit"`
	DepositDisplay string   `json:"deposit_display"`
	Features       []string `json:"features"`
}

type QuoteResponse struct {
	Basic    TierResponse `json:"basic"`
	Standard TierResponse `json:"standard"`
	Premium  TierResponse `json:"premium"`
}

type WizardResponse struct {
	Step                  int                       `json:"step"`
	StepName              string                    `json:"step_name"`
	Event                 *queries.EventDetailsView `json:"event,omitempty"`
	Equipment             *queries.EquipmentView    `json:"equipment,omitempty"`
	LineItems             []queries.LineItemView    `json:"line_items,omitempty"`
	EquipmentTotal        int64                     `json:"equipment_total"`
	EquipmentTotalDisplay string                    `json:"equipment_total_display"`
	Deposit               int64                     `json:"deposit"`
	DepositDisplay        string                    `json:"deposit_display"`
	Quote                 *QuoteResponse            `json:"quote,omitempty"`
	SelectedTier          string                    `json:"selected_tier,omitempty"`
	CheckoutOpen          bool                      `json:"checkout_open"`
	Completed             bool                      `json:"completed"`
}

// FromWizardView copies the read model field-for-field and layers the
// localized ARS display strings on top.
func FromWizardView(v *queries.WizardView) *WizardResponse {
	res := &WizardResponse{}
	_ = copier.Copy(res, v)
	res.EquipmentTotalDisplay = currency.FormatARS(v.EquipmentTotal)
	res.DepositDisplay = currency.FormatARS(v.Deposit)
	if res.Quote != nil {
		for _, t := range []*TierResponse{&res.Quote.Basic, &res.Quote.Standard, &res.Quote.Premium} {
			t.PriceDisplay = currency.FormatARS(t.Price)
			t.DepositDisplay = currency.FormatARS(t.Deposit)
		}
	}
	return res
}

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	Reference         string    `json:"reference"`
	EventDate         string    `json:"event_date"`
	Location          string    `json:"location"`
	EventType         string    `json:"event_type"`
	GuestCount        int       `json:"guest_count"`
	TierID            string    `json:"tier_id"`
	TierName          string    `json:"tier_name"`
	TotalPrice        int64     `json:"total_price"`
	TotalPriceDisplay string    `json:"total_price_display"`
	Deposit           int64     `json:"deposit"`
	DepositDisplay    string    `json:"deposit_display"`
	ContactName       string    `json:"contact_name"`
	ContactEmail      string    `json:"contact_email"`
	ContactPhone      string    `json:"contact_phone"`
	PaymentMethod     string    `json:"payment_method"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	res.TotalPriceDisplay = currency.FormatARS(v.TotalPrice)
	res.DepositDisplay = currency.FormatARS(v.Deposit)
	return res
}
