package wizard

import "soundlight-quotes/internal/domain/quote"

// Snapshot is the persistable shape of a Machine. The draft store saves
// it on every update and the machine is rebuilt from it on the next
// request. Quote results are not part of it: they are derived state and
// recomputed when the result step is reached again.
type Snapshot struct {
	Step         Step
	Event        *quote.EventDetails
	Equipment    *quote.Equipment
	Contact      *quote.Contact
	Revision     int64
	SelectedTier quote.TierID
	CheckoutOpen bool
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Step:         m.step,
		Event:        m.form.Event,
		Equipment:    m.form.Equipment,
		Contact:      m.form.Contact,
		Revision:     m.revision,
		SelectedTier: m.selectedTier,
		CheckoutOpen: m.checkoutOpen,
	}
}

// FromSnapshot rebuilds the machine. When the snapshot sits on the result
// step the quote is re-derived immediately so the view stays consistent
// with the stored selection.
func FromSnapshot(s Snapshot, calc *quote.Calculator) *Machine {
	step := s.Step
	if !step.IsValid() {
		step = StepEvent
	}

	m := &Machine{
		step: step,
		form: FormData{
			Event:     s.Event,
			Equipment: s.Equipment,
			Contact:   s.Contact,
		},
		revision:     s.Revision,
		selectedTier: s.SelectedTier,
		checkoutOpen: s.CheckoutOpen,
	}

	if m.step == StepResult && m.form.Equipment != nil {
		m.derive(calc)
	}
	return m
}
