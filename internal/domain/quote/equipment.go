package quote

import "errors"

var (
	ErrInvalidSoundType    = errors.New("invalid sound type")
	ErrInvalidLightingType = errors.New("invalid lighting type")
	ErrNegativeQuantity    = errors.New("quantity cannot be negative")
	ErrNoBasicService      = errors.New("select at least one of dj, sound or lighting")
	ErrScheduleRequired    = errors.New("dj service requires a schedule")
)

type SoundType string

const (
	SoundBasic    SoundType = "basic"
	SoundStandard SoundType = "standard"
	SoundOutdoor  SoundType = "outdoor"
)

func (t SoundType) IsValid() bool {
	switch t {
	case SoundBasic, SoundStandard, SoundOutdoor:
		return true
	default:
		return false
	}
}

type LightingType string

const (
	LightingStandard     LightingType = "standard"
	LightingProfessional LightingType = "professional"
)

func (t LightingType) IsValid() bool {
	switch t {
	case LightingStandard, LightingProfessional:
		return true
	default:
		return false
	}
}

// EquipmentSpec is the raw step-2 input before validation.
type EquipmentSpec struct {
	DJ               bool
	DJSchedule       string
	Sound            bool
	SoundType        SoundType
	Lighting         bool
	LightingType     LightingType
	LEDFloor         bool
	ArchStructure    bool
	SpiderStructure  bool
	FogMachine       bool
	LEDDecoration    int
	WirelessMic      int
	OutsideTransport bool
}

// Equipment is the validated selection. Variants default to standard when
// the matching toggle is on, and a DJ schedule is only kept when it parses
// and passes the booking window rules.
type Equipment struct {
	dj               bool
	djSchedule       string
	sound            bool
	soundType        SoundType
	lighting         bool
	lightingType     LightingType
	ledFloor         bool
	archStructure    bool
	spiderStructure  bool
	fogMachine       bool
	ledDecoration    int
	wirelessMic      int
	outsideTransport bool
}

func NewEquipment(spec EquipmentSpec) (Equipment, error) {
	if spec.LEDDecoration < 0 || spec.WirelessMic < 0 {
		return Equipment{}, ErrNegativeQuantity
	}

	soundType := spec.SoundType
	if spec.Sound {
		if soundType == "" {
			soundType = SoundStandard
		}
		if !soundType.IsValid() {
			return Equipment{}, ErrInvalidSoundType
		}
	} else {
		soundType = ""
	}

	lightingType := spec.LightingType
	if spec.Lighting {
		if lightingType == "" {
			lightingType = LightingStandard
		}
		if !lightingType.IsValid() {
			return Equipment{}, ErrInvalidLightingType
		}
	} else {
		lightingType = ""
	}

	schedule := ""
	if spec.DJ && spec.DJSchedule != "" {
		if err := ValidateSchedule(spec.DJSchedule); err != nil {
			return Equipment{}, err
		}
		schedule = spec.DJSchedule
	}

	return Equipment{
		dj:               spec.DJ,
		djSchedule:       schedule,
		sound:            spec.Sound,
		soundType:        soundType,
		lighting:         spec.Lighting,
		lightingType:     lightingType,
		ledFloor:         spec.LEDFloor,
		archStructure:    spec.ArchStructure,
		spiderStructure:  spec.SpiderStructure,
		fogMachine:       spec.FogMachine,
		ledDecoration:    spec.LEDDecoration,
		wirelessMic:      spec.WirelessMic,
		outsideTransport: spec.OutsideTransport,
	}, nil
}

// ReconstructEquipment rebuilds an already-validated value from storage.
func ReconstructEquipment(spec EquipmentSpec) Equipment {
	return Equipment{
		dj:               spec.DJ,
		djSchedule:       spec.DJSchedule,
		sound:            spec.Sound,
		soundType:        spec.SoundType,
		lighting:         spec.Lighting,
		lightingType:     spec.LightingType,
		ledFloor:         spec.LEDFloor,
		archStructure:    spec.ArchStructure,
		spiderStructure:  spec.SpiderStructure,
		fogMachine:       spec.FogMachine,
		ledDecoration:    spec.LEDDecoration,
		wirelessMic:      spec.WirelessMic,
		outsideTransport: spec.OutsideTransport,
	}
}

// Spec returns the exported shape, for persistence and transport.
func (e Equipment) Spec() EquipmentSpec {
	return EquipmentSpec{
		DJ:               e.dj,
		DJSchedule:       e.djSchedule,
		Sound:            e.sound,
		SoundType:        e.soundType,
		Lighting:         e.lighting,
		LightingType:     e.lightingType,
		LEDFloor:         e.ledFloor,
		ArchStructure:    e.archStructure,
		SpiderStructure:  e.spiderStructure,
		FogMachine:       e.fogMachine,
		LEDDecoration:    e.ledDecoration,
		WirelessMic:      e.wirelessMic,
		OutsideTransport: e.outsideTransport,
	}
}

func (e Equipment) DJ() bool                   { return e.dj }
func (e Equipment) DJSchedule() string         { return e.djSchedule }
func (e Equipment) Sound() bool                { return e.sound }
func (e Equipment) SoundType() SoundType       { return e.soundType }
func (e Equipment) Lighting() bool             { return e.lighting }
func (e Equipment) LightingType() LightingType { return e.lightingType }
func (e Equipment) LEDFloor() bool             { return e.ledFloor }
func (e Equipment) ArchStructure() bool        { return e.archStructure }
func (e Equipment) SpiderStructure() bool      { return e.spiderStructure }
func (e Equipment) FogMachine() bool           { return e.fogMachine }
func (e Equipment) LEDDecoration() int         { return e.ledDecoration }
func (e Equipment) WirelessMic() int           { return e.wirelessMic }
func (e Equipment) OutsideTransport() bool     { return e.outsideTransport }

// HasBasicService reports whether at least one headline service is chosen.
func (e Equipment) HasBasicService() bool {
	return e.dj || e.sound || e.lighting
}

// ValidateForBooking is the guard invariant the wizard enforces before
// leaving the equipment and review steps.
func (e Equipment) ValidateForBooking() error {
	if !e.HasBasicService() {
		return ErrNoBasicService
	}
	if e.dj {
		if e.djSchedule == "" {
			return ErrScheduleRequired
		}
		if err := ValidateSchedule(e.djSchedule); err != nil {
			return err
		}
	}
	return nil
}
