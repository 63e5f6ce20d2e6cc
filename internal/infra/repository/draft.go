package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
	"soundlight-quotes/internal/infra"
	redisx "soundlight-quotes/internal/infra/redis"
	"soundlight-quotes/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DraftRepository keeps in-progress wizard drafts in Redis, one JSON
// value per session. A value that fails to parse is logged and treated
// as "no draft": a corrupt draft is equivalent to an absent one.
type DraftRepository struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDraftRepository(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) commands.DraftRepository {
	return &DraftRepository{rdb: rdb, ttl: ttl, logger: logger}
}

type draftRecord struct {
	Step         int              `json:"step"`
	Revision     int64            `json:"revision"`
	SelectedTier string           `json:"selected_tier,omitempty"`
	CheckoutOpen bool             `json:"checkout_open,omitempty"`
	Event        *eventRecord     `json:"event_details,omitempty"`
	Equipment    *equipmentRecord `json:"equipment,omitempty"`
	Contact      *contactRecord   `json:"contact,omitempty"`
}

type eventRecord struct {
	Date       string `json:"date"` // ISO calendar date
	Location   string `json:"location"`
	EventType  string `json:"event_type"`
	GuestCount int    `json:"guest_count"`
}

type equipmentRecord struct {
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

type contactRecord struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
}

func (r *DraftRepository) Save(ctx context.Context, sessionID uuid.UUID, snap wizard.Snapshot) error {
	data, err := json.Marshal(toRecord(snap))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to marshal draft", err)
	}

	if err := r.rdb.Set(ctx, redisx.KeyDraft(sessionID.String()), data, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to save draft", err)
	}
	return nil
}

func (r *DraftRepository) Load(ctx context.Context, sessionID uuid.UUID) (*wizard.Snapshot, error) {
	data, err := r.rdb.Get(ctx, redisx.KeyDraft(sessionID.String())).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to load draft", err)
	}

	var rec draftRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		r.warnCorrupt(sessionID, err)
		return nil, nil
	}

	snap, err := fromRecord(rec)
	if err != nil {
		r.warnCorrupt(sessionID, err)
		return nil, nil
	}
	return snap, nil
}

// A corrupt value is logged and swallowed; the caller sees "no draft".
func (r *DraftRepository) warnCorrupt(sessionID uuid.UUID, err error) {
	r.logger.Warn("corrupt draft, starting fresh",
		"kind", string(infra.KindCorruptData),
		"session_id", sessionID,
		"error", err.Error(),
	)
}

func (r *DraftRepository) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.rdb.Del(ctx, redisx.KeyDraft(sessionID.String())).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to clear draft", err)
	}
	return nil
}

func toRecord(snap wizard.Snapshot) draftRecord {
	rec := draftRecord{
		Step:         int(snap.Step),
		Revision:     snap.Revision,
		SelectedTier: snap.SelectedTier.String(),
		CheckoutOpen: snap.CheckoutOpen,
	}

	if snap.Event != nil {
		rec.Event = &eventRecord{
			Date:       snap.Event.Date().String(),
			Location:   snap.Event.Location(),
			EventType:  snap.Event.EventType().String(),
			GuestCount: snap.Event.GuestCount(),
		}
	}
	if snap.Equipment != nil {
		spec := snap.Equipment.Spec()
		rec.Equipment = &equipmentRecord{
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
	if snap.Contact != nil {
		rec.Contact = &contactRecord{
			Name:          snap.Contact.Name(),
			Email:         snap.Contact.Email(),
			Phone:         snap.Contact.Phone(),
			PaymentMethod: snap.Contact.PaymentMethod().String(),
		}
	}

	return rec
}

func fromRecord(rec draftRecord) (*wizard.Snapshot, error) {
	snap := &wizard.Snapshot{
		Step:         wizard.Step(rec.Step),
		Revision:     rec.Revision,
		SelectedTier: quote.TierID(rec.SelectedTier),
		CheckoutOpen: rec.CheckoutOpen,
	}

	if rec.Event != nil {
		date, err := quote.ParseDate(rec.Event.Date)
		if err != nil {
			return nil, err
		}
		ev := quote.ReconstructEventDetails(date, rec.Event.Location, quote.EventType(rec.Event.EventType), rec.Event.GuestCount)
		snap.Event = &ev
	}
	if rec.Equipment != nil {
		eq := quote.ReconstructEquipment(quote.EquipmentSpec{
			DJ:               rec.Equipment.DJ,
			DJSchedule:       rec.Equipment.DJSchedule,
			Sound:            rec.Equipment.Sound,
			SoundType:        quote.SoundType(rec.Equipment.SoundType),
			Lighting:         rec.Equipment.Lighting,
			LightingType:     quote.LightingType(rec.Equipment.LightingType),
			LEDFloor:         rec.Equipment.LEDFloor,
			ArchStructure:    rec.Equipment.ArchStructure,
			SpiderStructure:  rec.Equipment.SpiderStructure,
			FogMachine:       rec.Equipment.FogMachine,
			LEDDecoration:    rec.Equipment.LEDDecoration,
			WirelessMic:      rec.Equipment.WirelessMic,
			OutsideTransport: rec.Equipment.OutsideTransport,
		})
		snap.Equipment = &eq
	}
	if rec.Contact != nil {
		ct := quote.ReconstructContact(rec.Contact.Name, rec.Contact.Email, rec.Contact.Phone, quote.PaymentMethod(rec.Contact.PaymentMethod))
		snap.Contact = &ct
	}

	return snap, nil
}
