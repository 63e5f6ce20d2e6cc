package commands

import (
	"context"
	"errors"
	"log/slog"

	"soundlight-quotes/internal/domain/booking"
	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
	"soundlight-quotes/internal/pkg/errs"
	"soundlight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"
)

// DraftRepository is the write-through persistence behind the wizard. A
// missing draft is (nil, nil), never an error.
type DraftRepository interface {
	Save(ctx context.Context, sessionID uuid.UUID, snap wizard.Snapshot) error
	Load(ctx context.Context, sessionID uuid.UUID) (*wizard.Snapshot, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// BookingRepository persists a completed checkout. Create allocates the
// reference number inside the caller's transaction and returns it.
type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (string, error)
}

type CheckoutResult struct {
	Booking *queries.BookingView
}

type WizardCommands interface {
	GetState(ctx context.Context, sessionID uuid.UUID) (*queries.WizardView, error)
	SubmitEvent(ctx context.Context, sessionID uuid.UUID, ev quote.EventDetails) (*queries.WizardView, error)
	SubmitEquipment(ctx context.Context, sessionID uuid.UUID, eq quote.Equipment) (*queries.WizardView, error)
	Next(ctx context.Context, sessionID uuid.UUID) (*queries.WizardView, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*queries.WizardView, error)
	EditStep(ctx context.Context, sessionID uuid.UUID, step int) (*queries.WizardView, error)
	SelectTier(ctx context.Context, sessionID uuid.UUID, tier quote.TierID) (*queries.WizardView, error)
	Checkout(ctx context.Context, sessionID uuid.UUID, contact quote.Contact) (*CheckoutResult, error)
	Discard(ctx context.Context, sessionID uuid.UUID) error
}

type wizardUseCaseImpl struct {
	draftRepo   DraftRepository
	bookingRepo BookingRepository
	calc        *quote.Calculator
	db          *pgxpool.Pool
	checkouts   singleflight.Group
}

func NewWizardCommands(
	draftRepo DraftRepository,
	bookingRepo BookingRepository,
	calc *quote.Calculator,
	db *pgxpool.Pool,
) WizardCommands {
	return &wizardUseCaseImpl{
		draftRepo:   draftRepo,
		bookingRepo: bookingRepo,
		calc:        calc,
		db:          db,
	}
}

func (w *wizardUseCaseImpl) GetState(ctx context.Context, sessionID uuid.UUID) (*queries.WizardView, error) {
	m, _, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return queries.BuildWizardView(m, w.calc), nil
}

func (w *wizardUseCaseImpl) SubmitEvent(ctx context.Context, sessionID uuid.UUID, ev quote.EventDetails) (*queries.WizardView, error) {
	m, _, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := m.UpdateEvent(ev); err != nil {
		return nil, err
	}
	return w.persistAndView(ctx, sessionID, m)
}

func (w *wizardUseCaseImpl) SubmitEquipment(ctx context.Context, sessionID uuid.UUID, eq quote.Equipment) (*queries.WizardView, error) {
	m, _, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Guard failures still persist the selection: the user keeps editing
	// the same draft, the wizard just refuses to move on.
	guardErr := m.UpdateEquipment(eq)
	if guardErr != nil && !isGuardViolation(guardErr) {
		return nil, guardErr
	}
	view, err := w.persistAndView(ctx, sessionID, m)
	if err != nil {
		return nil, err
	}
	if guardErr != nil {
		return view, guardErr
	}
	return view, nil
}

func (w *wizardUseCaseImpl) Next(ctx context.Context, sessionID uuid.UUID) (*queries.WizardView, error) {
	m, found, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrDraftNotFound
	}

	if err := m.Next(w.calc); err != nil {
		return nil, err
	}
	return w.persistAndView(ctx, sessionID, m)
}

func (w *wizardUseCaseImpl) Back(ctx context.Context, sessionID uuid.UUID) (*queries.WizardView, error) {
	m, found, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrDraftNotFound
	}

	if err := m.Back(); err != nil {
		return nil, err
	}
	return w.persistAndView(ctx, sessionID, m)
}

func (w *wizardUseCaseImpl) EditStep(ctx context.Context, sessionID uuid.UUID, step int) (*queries.WizardView, error) {
	m, found, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrDraftNotFound
	}

	if err := m.EditStep(wizard.Step(step)); err != nil {
		return nil, err
	}
	return w.persistAndView(ctx, sessionID, m)
}

func (w *wizardUseCaseImpl) SelectTier(ctx context.Context, sessionID uuid.UUID, tier quote.TierID) (*queries.WizardView, error) {
	m, found, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrDraftNotFound
	}

	if err := m.SelectTier(tier); err != nil {
		return nil, err
	}
	return w.persistAndView(ctx, sessionID, m)
}

// Checkout submits the booking. Calls for the same session are collapsed
// through singleflight so a double click cannot create two bookings.
func (w *wizardUseCaseImpl) Checkout(ctx context.Context, sessionID uuid.UUID, contact quote.Contact) (*CheckoutResult, error) {
	result, err, _ := w.checkouts.Do(sessionID.String(), func() (any, error) {
		return w.checkout(ctx, sessionID, contact)
	})
	if err != nil {
		return nil, err
	}
	return result.(*CheckoutResult), nil
}

func (w *wizardUseCaseImpl) checkout(ctx context.Context, sessionID uuid.UUID, contact quote.Contact) (*CheckoutResult, error) {
	m, found, err := w.loadMachine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrDraftNotFound
	}

	if !m.CheckoutOpen() {
		return nil, errs.ErrCheckoutNotOpen
	}

	tier, err := m.SelectedQuoteTier()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNoQuoteDerived)
	}

	form := m.Form()
	bk, err := booking.New(form.Event, form.Equipment, contact, m.SelectedTier(), tier, w.calc.Deposit(tier.Price))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	reference, err := w.executeBookingTransaction(ctx, bk)
	if err != nil {
		// The wizard stays in CheckoutOpen; the client may resubmit.
		return nil, err
	}

	if err := m.CompleteCheckout(contact); err != nil {
		return nil, err
	}

	if err := w.draftRepo.Clear(ctx, sessionID); err != nil {
		// The booking exists; a lingering draft only costs its TTL.
		slog.Warn("failed to clear draft after checkout", "session_id", sessionID, "error", err.Error())
	}

	return &CheckoutResult{Booking: bookingView(bk, reference)}, nil
}

func (w *wizardUseCaseImpl) executeBookingTransaction(ctx context.Context, bk *booking.Booking) (string, error) {
	tx, err := w.db.Begin(ctx)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	reference, err := w.bookingRepo.Create(ctx, tx, bk)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return reference, nil
}

func (w *wizardUseCaseImpl) Discard(ctx context.Context, sessionID uuid.UUID) error {
	if err := w.draftRepo.Clear(ctx, sessionID); err != nil {
		return errs.Mark(err, errs.ErrDraftStoreFailed)
	}
	return nil
}

// loadMachine hydrates the machine from the draft store, or starts a
// fresh one. found reports whether a draft existed.
func (w *wizardUseCaseImpl) loadMachine(ctx context.Context, sessionID uuid.UUID) (*wizard.Machine, bool, error) {
	snap, err := w.draftRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDraftStoreFailed)
	}
	if snap == nil {
		return wizard.NewMachine(), false, nil
	}
	return wizard.FromSnapshot(*snap, w.calc), true, nil
}

func (w *wizardUseCaseImpl) persistAndView(ctx context.Context, sessionID uuid.UUID, m *wizard.Machine) (*queries.WizardView, error) {
	if err := w.draftRepo.Save(ctx, sessionID, m.Snapshot()); err != nil {
		return nil, errs.Mark(err, errs.ErrDraftStoreFailed)
	}
	return queries.BuildWizardView(m, w.calc), nil
}

var guardViolations = []error{
	quote.ErrNoBasicService,
	quote.ErrScheduleRequired,
	quote.ErrScheduleFormat,
	quote.ErrScheduleTooShort,
	quote.ErrScheduleTooLong,
	quote.ErrScheduleStarts,
	quote.ErrScheduleEnds,
}

func isGuardViolation(err error) bool {
	for _, sentinel := range guardViolations {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func bookingView(bk *booking.Booking, reference string) *queries.BookingView {
	ev := bk.Event()
	ct := bk.Contact()
	return &queries.BookingView{
		ID:            bk.ID(),
		Reference:     reference,
		EventDate:     ev.Date().String(),
		Location:      ev.Location(),
		EventType:     ev.EventType().String(),
		GuestCount:    ev.GuestCount(),
		TierID:        bk.TierID().String(),
		TierName:      bk.TierName(),
		TotalPrice:    int64(bk.TotalPrice()),
		Deposit:       int64(bk.Deposit()),
		ContactName:   ct.Name(),
		ContactEmail:  ct.Email(),
		ContactPhone:  ct.Phone(),
		PaymentMethod: ct.PaymentMethod().String(),
		CreatedAt:     bk.CreatedAt(),
	}
}
