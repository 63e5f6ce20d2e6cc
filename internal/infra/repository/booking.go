package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"soundlight-quotes/internal/domain/booking"
	"soundlight-quotes/internal/infra"
	"soundlight-quotes/internal/usecase/commands"
	"soundlight-quotes/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	logger *slog.Logger
}

func NewBookingRepository(logger *slog.Logger) commands.BookingRepository {
	return &BookingRepository{logger: logger}
}

// Create allocates the next reference number and inserts the booking in
// the caller's transaction. References come from a DB sequence, so they
// are unique even across concurrent checkouts.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (string, error) {
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('booking_reference_seq')`).Scan(&seq); err != nil {
		return "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to allocate booking reference", err)
	}
	reference := booking.FormatReference(seq)

	equipmentJSON, err := json.Marshal(equipmentRecordOf(b))
	if err != nil {
		return "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode equipment", err)
	}

	ev := b.Event()
	ct := b.Contact()
	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (
			id, reference,
			event_date, location, event_type, guest_count,
			equipment,
			tier_id, tier_name, total_price, deposit,
			contact_name, contact_email, contact_phone, payment_method,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now())`,
		b.ID(), reference,
		ev.Date().Time(), ev.Location(), ev.EventType().String(), ev.GuestCount(),
		equipmentJSON,
		b.TierID().String(), b.TierName(), int64(b.TotalPrice()), int64(b.Deposit()),
		ct.Name(), ct.Email(), ct.Phone(), ct.PaymentMethod().String(),
	)
	if err != nil {
		return "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert booking", err)
	}

	return reference, nil
}

func equipmentRecordOf(b *booking.Booking) equipmentRecord {
	spec := b.Equipment().Spec()
	return equipmentRecord{
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

type BookingReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingReadStore(pool *pgxpool.Pool, logger *slog.Logger) queries.BookingReadStore {
	return &BookingReadStore{pool: pool, logger: logger}
}

func (s *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		eventDate time.Time
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, reference, event_date, location, event_type, guest_count,
		       tier_id, tier_name, total_price, deposit,
		       contact_name, contact_email, contact_phone, payment_method,
		       created_at
		FROM bookings
		WHERE reference = $1`,
		reference,
	).Scan(
		&view.ID, &view.Reference, &eventDate, &view.Location, &view.EventType, &view.GuestCount,
		&view.TierID, &view.TierName, &view.TotalPrice, &view.Deposit,
		&view.ContactName, &view.ContactEmail, &view.ContactPhone, &view.PaymentMethod,
		&view.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", err)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query booking", err)
	}

	view.EventDate = eventDate.Format("2006-01-02")
	return &view, nil
}
