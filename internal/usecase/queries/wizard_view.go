package queries

import (
	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
)

// BuildWizardView projects a machine onto the read model. Pricing of the
// current selection is recomputed here so the summary, the quote and the
// checkout always show the same numbers.
func BuildWizardView(m *wizard.Machine, calc *quote.Calculator) *WizardView {
	view := &WizardView{
		Step:         int(m.Step()),
		StepName:     m.Step().String(),
		SelectedTier: m.SelectedTier().String(),
		CheckoutOpen: m.CheckoutOpen(),
		Completed:    m.Completed(),
	}

	form := m.Form()
	if form.Event != nil {
		view.Event = &EventDetailsView{
			Date:       form.Event.Date().String(),
			Location:   form.Event.Location(),
			EventType:  form.Event.EventType().String(),
			GuestCount: form.Event.GuestCount(),
		}
	}
	if form.Equipment != nil {
		view.Equipment = equipmentView(*form.Equipment)
		total := calc.EquipmentTotal(*form.Equipment)
		view.EquipmentTotal = int64(total)
		view.Deposit = int64(calc.Deposit(total))
		for _, item := range calc.LineItems(*form.Equipment) {
			view.LineItems = append(view.LineItems, LineItemView{
				Label:    item.Label,
				Quantity: item.Quantity,
				Amount:   int64(item.Amount),
			})
		}
	}
	if q := m.Quote(); q != nil {
		view.Quote = &QuoteView{
			Basic:    tierView(quote.TierBasic, q.Basic, calc),
			Standard: tierView(quote.TierStandard, q.Standard, calc),
			Premium:  tierView(quote.TierPremium, q.Premium, calc),
		}
	}

	return view
}

func equipmentView(eq quote.Equipment) *EquipmentView {
	spec := eq.Spec()
	return &EquipmentView{
		DJ:               spec.DJ,
		DJSchedule:       spec.DJSchedule,
		Sound:            spec.Sound,
		SoundType:        string(spec.SoundType),
		Lighting:         spec.Lighting,
		LightingType:     string(spec.LightingType),
		LEDFloor:         spec.LEDFloor,
		ArchStructure:    spec.ArchStructure,
		SpiderStructure:  spec.SpiderStructure,
		FogMachine:       spec.FogMachine,
		LEDDecoration:    spec.LEDDecoration,
		WirelessMic:      spec.WirelessMic,
		OutsideTransport: spec.OutsideTransport,
	}
}

func tierView(id quote.TierID, t quote.Tier, calc *quote.Calculator) TierView {
	return TierView{
		ID:       id.String(),
		Name:     t.Name,
		Price:    int64(t.Price),
		Deposit:  int64(calc.Deposit(t.Price)),
		Features: t.Features,
	}
}
