package booking

import (
	"errors"
	"fmt"
	"time"

	"soundlight-quotes/internal/domain/quote"

	"github.com/google/uuid"
)

var (
	ErrMissingEvent     = errors.New("booking requires event details")
	ErrMissingEquipment = errors.New("booking requires an equipment selection")
	ErrNegativePrice    = errors.New("booking price cannot be negative")
)

// FormatReference renders a sequence number as the public SL-#### code.
// Numbers are allocated by the database, never client-side.
func FormatReference(n int64) string {
	return fmt.Sprintf("SL-%04d", n)
}

// Booking is a confirmed quote: the wizard's accumulated data frozen at
// checkout, plus the chosen tier and the deposit due.
type Booking struct {
	id         uuid.UUID
	event      quote.EventDetails
	equipment  quote.Equipment
	contact    quote.Contact
	tierID     quote.TierID
	tierName   string
	totalPrice quote.Money
	deposit    quote.Money
	reference  string
	createdAt  time.Time
}

// New freezes a completed wizard session into a booking. The reference is
// left empty; the repository assigns it from the DB sequence on insert.
func New(
	event *quote.EventDetails,
	equipment *quote.Equipment,
	contact quote.Contact,
	tierID quote.TierID,
	tier quote.Tier,
	deposit quote.Money,
) (*Booking, error) {
	if event == nil {
		return nil, ErrMissingEvent
	}
	if equipment == nil {
		return nil, ErrMissingEquipment
	}
	if tier.Price < 0 || deposit < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		event:      *event,
		equipment:  *equipment,
		contact:    contact,
		tierID:     tierID,
		tierName:   tier.Name,
		totalPrice: tier.Price,
		deposit:    deposit,
	}, nil
}

// Reconstruct rebuilds a stored booking.
func Reconstruct(
	id uuid.UUID,
	event quote.EventDetails,
	equipment quote.Equipment,
	contact quote.Contact,
	tierID quote.TierID,
	tierName string,
	totalPrice, deposit quote.Money,
	reference string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		event:      event,
		equipment:  equipment,
		contact:    contact,
		tierID:     tierID,
		tierName:   tierName,
		totalPrice: totalPrice,
		deposit:    deposit,
		reference:  reference,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Event() quote.EventDetails  { return b.event }
func (b *Booking) Equipment() quote.Equipment { return b.equipment }
func (b *Booking) Contact() quote.Contact     { return b.contact }
func (b *Booking) TierID() quote.TierID       { return b.tierID }
func (b *Booking) TierName() string           { return b.tierName }
func (b *Booking) TotalPrice() quote.Money    { return b.totalPrice }
func (b *Booking) Deposit() quote.Money       { return b.deposit }
func (b *Booking) Reference() string          { return b.reference }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
