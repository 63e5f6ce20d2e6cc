package wizard

import (
	"errors"

	"soundlight-quotes/internal/domain/quote"
)

var (
	ErrAtFirstStep     = errors.New("already at the first step")
	ErrAtLastStep      = errors.New("already at the last step")
	ErrUnknownStep     = errors.New("unknown wizard step")
	ErrCompleted       = errors.New("wizard already completed")
	ErrNoQuote         = errors.New("quote has not been derived")
	ErrCheckoutClosed  = errors.New("checkout is not open")
	ErrEventRequired   = errors.New("event details are required first")
	ErrNotAtResultStep = errors.New("tier selection requires the result step")
)

type Step int

const (
	StepEvent Step = iota
	StepEquipment
	StepReview
	StepResult
)

const lastStep = StepResult

func (s Step) String() string {
	switch s {
	case StepEvent:
		return "event"
	case StepEquipment:
		return "equipment"
	case StepReview:
		return "review"
	case StepResult:
		return "result"
	default:
		return "unknown"
	}
}

func (s Step) IsValid() bool {
	return s >= StepEvent && s <= lastStep
}

// FormData is the incrementally filled draft. Fields are nil until their
// step has been submitted.
type FormData struct {
	Event     *quote.EventDetails
	Equipment *quote.Equipment
	Contact   *quote.Contact
}

// Machine is the single owner of one quoting session's state. It is not
// safe for concurrent use; the usecase serializes access per session.
type Machine struct {
	step          Step
	form          FormData
	revision      int64
	quote         *quote.QuoteResult
	quoteRevision int64
	selectedTier  quote.TierID
	checkoutOpen  bool
	completed     bool
}

func NewMachine() *Machine {
	return &Machine{step: StepEvent}
}

func (m *Machine) Step() Step                 { return m.step }
func (m *Machine) Form() FormData             { return m.form }
func (m *Machine) Revision() int64            { return m.revision }
func (m *Machine) Quote() *quote.QuoteResult  { return m.quote }
func (m *Machine) SelectedTier() quote.TierID { return m.selectedTier }
func (m *Machine) CheckoutOpen() bool         { return m.checkoutOpen }
func (m *Machine) Completed() bool            { return m.completed }

// UpdateEvent merges step-1 data and advances from the event step. The
// caller persists the snapshot afterwards (write-through).
func (m *Machine) UpdateEvent(ev quote.EventDetails) error {
	if m.completed {
		return ErrCompleted
	}
	m.form.Event = &ev
	m.bump()
	if m.step == StepEvent {
		m.step = StepEquipment
	}
	return nil
}

// UpdateEquipment merges step-2 data and, when the guard passes, advances
// from the equipment step. A guard failure keeps the selection (the user
// edits in place) but does not move.
func (m *Machine) UpdateEquipment(eq quote.Equipment) error {
	if m.completed {
		return ErrCompleted
	}
	if m.form.Event == nil {
		return ErrEventRequired
	}
	m.form.Equipment = &eq
	m.bump()
	if err := eq.ValidateForBooking(); err != nil {
		return err
	}
	if m.step == StepEquipment {
		m.step = StepReview
	}
	return nil
}

// Next advances one step. Leaving equipment or review re-checks the guard
// invariant; landing on the result step derives the tiers. Repeating Next
// on the result step is a no-op error, and a quote derived from the
// current revision is never recomputed, so double submissions are
// harmless.
func (m *Machine) Next(calc *quote.Calculator) error {
	if m.completed {
		return ErrCompleted
	}
	if m.step >= lastStep {
		return ErrAtLastStep
	}

	switch m.step {
	case StepEvent:
		if m.form.Event == nil {
			return ErrEventRequired
		}
	case StepEquipment, StepReview:
		if m.form.Equipment == nil {
			return quote.ErrNoBasicService
		}
		if err := m.form.Equipment.ValidateForBooking(); err != nil {
			return err
		}
	}

	m.step++
	if m.step == StepResult {
		m.derive(calc)
	}
	return nil
}

func (m *Machine) Back() error {
	if m.completed {
		return ErrCompleted
	}
	if m.step <= StepEvent {
		return ErrAtFirstStep
	}
	m.step--
	m.closeCheckout()
	return nil
}

// EditStep jumps directly to a step, as the review screen's edit links do.
func (m *Machine) EditStep(s Step) error {
	if m.completed {
		return ErrCompleted
	}
	if !s.IsValid() {
		return ErrUnknownStep
	}
	m.step = s
	m.closeCheckout()
	return nil
}

func (m *Machine) SelectTier(id quote.TierID) error {
	if m.completed {
		return ErrCompleted
	}
	if m.step != StepResult {
		return ErrNotAtResultStep
	}
	if m.quote == nil {
		return ErrNoQuote
	}
	if !id.IsValid() {
		return quote.ErrInvalidTier
	}
	m.selectedTier = id
	m.checkoutOpen = true
	return nil
}

// Leaving the result step always withdraws an open checkout.
func (m *Machine) closeCheckout() {
	m.checkoutOpen = false
}

// CompleteCheckout records the contact and moves to the terminal state.
// The machine is not reusable afterwards.
func (m *Machine) CompleteCheckout(c quote.Contact) error {
	if m.completed {
		return ErrCompleted
	}
	if !m.checkoutOpen {
		return ErrCheckoutClosed
	}
	m.form.Contact = &c
	m.closeCheckout()
	m.completed = true
	return nil
}

// SelectedQuoteTier resolves the tier chosen at checkout.
func (m *Machine) SelectedQuoteTier() (quote.Tier, error) {
	if m.quote == nil {
		return quote.Tier{}, ErrNoQuote
	}
	return m.quote.Tier(m.selectedTier)
}

func (m *Machine) bump() {
	m.revision++
	// Editing invalidates any derived quote indirectly: the revision moved,
	// so the next result-step arrival recomputes.
}

func (m *Machine) derive(calc *quote.Calculator) {
	if m.form.Equipment == nil {
		// The guards above make this unreachable; a nil here means a caller
		// bypassed the machine.
		panic("wizard: deriving tiers without equipment")
	}
	if m.quote != nil && m.quoteRevision == m.revision {
		return
	}
	result := calc.DeriveTiers(*m.form.Equipment)
	m.quote = &result
	m.quoteRevision = m.revision
}
