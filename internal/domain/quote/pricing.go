package quote

import "math"

// Money is a whole-peso ARS amount. The catalog has no sub-peso prices,
// so no cent bookkeeping is needed.
type Money int64

// DepositRatio is the single definition of the booking deposit. Both the
// review summary and the checkout view derive from it.
const DepositRatio = 0.5

// PriceList maps every equipment item to its unit price. Injectable so
// tests can pin small numbers.
type PriceList struct {
	DJ                Money
	Sound             map[SoundType]Money
	Lighting          map[LightingType]Money
	LEDFloor          Money
	ArchStructure     Money
	SpiderStructure   Money
	FogMachine        Money
	LEDDecorationUnit Money
	WirelessMicUnit   Money
	OutsideTransport  Money
}

func DefaultPriceList() PriceList {
	return PriceList{
		DJ: 100000,
		Sound: map[SoundType]Money{
			SoundBasic:    90000,
			SoundStandard: 110000,
			SoundOutdoor:  120000,
		},
		Lighting: map[LightingType]Money{
			LightingStandard:     100000,
			LightingProfessional: 120000,
		},
		LEDFloor:          3000,
		ArchStructure:     100000,
		SpiderStructure:   200000,
		FogMachine:        20000,
		LEDDecorationUnit: 7000,
		WirelessMicUnit:   2000,
		OutsideTransport:  1800,
	}
}

// LineItem is one priced row of the selection, for review and result views.
type LineItem struct {
	Label    string
	Quantity int
	Amount   Money
}

type Calculator struct {
	prices PriceList
}

func NewCalculator() *Calculator {
	return NewCalculatorWith(DefaultPriceList())
}

func NewCalculatorWith(prices PriceList) *Calculator {
	return &Calculator{prices: prices}
}

func (c *Calculator) Prices() PriceList {
	return c.prices
}

// EquipmentTotal sums the selection. Pure: same input, same output.
func (c *Calculator) EquipmentTotal(eq Equipment) Money {
	var total Money
	for _, item := range c.LineItems(eq) {
		total += item.Amount
	}
	return total
}

// LineItems lists each selected item with its priced amount, in catalog
// order. Variants already default to standard inside Equipment.
func (c *Calculator) LineItems(eq Equipment) []LineItem {
	items := make([]LineItem, 0, 10)

	if eq.DJ() {
		items = append(items, LineItem{Label: "DJ", Quantity: 1, Amount: c.prices.DJ})
	}
	if eq.Sound() {
		st := eq.SoundType()
		if st == "" {
			st = SoundStandard
		}
		items = append(items, LineItem{Label: "Sound (" + string(st) + ")", Quantity: 1, Amount: c.prices.Sound[st]})
	}
	if eq.Lighting() {
		lt := eq.LightingType()
		if lt == "" {
			lt = LightingStandard
		}
		items = append(items, LineItem{Label: "Lighting (" + string(lt) + ")", Quantity: 1, Amount: c.prices.Lighting[lt]})
	}
	if eq.LEDFloor() {
		items = append(items, LineItem{Label: "LED floor", Quantity: 1, Amount: c.prices.LEDFloor})
	}
	if eq.ArchStructure() {
		items = append(items, LineItem{Label: "Arch structure", Quantity: 1, Amount: c.prices.ArchStructure})
	}
	if eq.SpiderStructure() {
		items = append(items, LineItem{Label: "Spider structure", Quantity: 1, Amount: c.prices.SpiderStructure})
	}
	if eq.FogMachine() {
		items = append(items, LineItem{Label: "Fog machine", Quantity: 1, Amount: c.prices.FogMachine})
	}
	if n := eq.LEDDecoration(); n > 0 {
		items = append(items, LineItem{Label: "LED decoration", Quantity: n, Amount: Money(n) * c.prices.LEDDecorationUnit})
	}
	if n := eq.WirelessMic(); n > 0 {
		items = append(items, LineItem{Label: "Wireless microphone", Quantity: n, Amount: Money(n) * c.prices.WirelessMicUnit})
	}
	if eq.OutsideTransport() {
		items = append(items, LineItem{Label: "Outside transport", Quantity: 1, Amount: c.prices.OutsideTransport})
	}

	return items
}

// Deposit is total * DepositRatio. Catalog amounts are all even, so the
// result is exact for any selection-derived total.
func (c *Calculator) Deposit(total Money) Money {
	return Money(math.Round(float64(total) * DepositRatio))
}
