//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
	"soundlight-quotes/internal/pkg/errs"
	"soundlight-quotes/internal/usecase/commands"
	commandsmock "soundlight-quotes/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	draftRepo   *commandsmock.MockDraftRepository
	bookingRepo *commandsmock.MockBookingRepository
	uc          commands.WizardCommands
	sessionID   uuid.UUID
	calc        *quote.Calculator
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.draftRepo = commandsmock.NewMockDraftRepository(s.mockCtrl)
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.calc = quote.NewCalculator()
	s.uc = commands.NewWizardCommands(s.draftRepo, s.bookingRepo, s.calc, nil)
	s.sessionID = uuid.New()
}

func (s *WizardCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardCommandsSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}

func (s *WizardCommandsTestSuite) event() quote.EventDetails {
	today := quote.NewDate(2026, time.January, 1)
	ev, err := quote.NewEventDetails(quote.NewDate(2026, time.December, 5), "Belgrano, Buenos Aires", quote.EventCorporate, 200, today)
	s.Require().NoError(err)
	return ev
}

func (s *WizardCommandsTestSuite) equipment() quote.Equipment {
	eq, err := quote.NewEquipment(quote.EquipmentSpec{Sound: true, Lighting: true})
	s.Require().NoError(err)
	return eq
}

func (s *WizardCommandsTestSuite) TestGetState() {
	s.Run("missing draft shows a fresh wizard", func() {
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(nil, nil).Times(1)

		view, err := s.uc.GetState(context.Background(), s.sessionID)
		s.Require().NoError(err)
		s.Equal("event", view.StepName)
		s.Nil(view.Event)
		s.False(view.Completed)
	})

	s.Run("existing draft is projected", func() {
		ev := s.event()
		snap := &wizard.Snapshot{Step: wizard.StepEquipment, Event: &ev, Revision: 1}
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(snap, nil).Times(1)

		view, err := s.uc.GetState(context.Background(), s.sessionID)
		s.Require().NoError(err)
		s.Equal("equipment", view.StepName)
		s.Require().NotNil(view.Event)
		s.Equal("2026-12-05", view.Event.Date)
	})

	s.Run("store failure is surfaced", func() {
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(nil, errs.New("redis down")).Times(1)

		_, err := s.uc.GetState(context.Background(), s.sessionID)
		s.ErrorIs(err, errs.ErrDraftStoreFailed)
	})
}

func (s *WizardCommandsTestSuite) TestSubmitEvent() {
	s.Run("first submission starts a draft and advances", func() {
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(nil, nil).Times(1)

		var saved wizard.Snapshot
		s.draftRepo.EXPECT().Save(gomock.Any(), s.sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, snap wizard.Snapshot) error {
				saved = snap
				return nil
			}).Times(1)

		view, err := s.uc.SubmitEvent(context.Background(), s.sessionID, s.event())
		s.Require().NoError(err)
		s.Equal("equipment", view.StepName)
		s.Equal(wizard.StepEquipment, saved.Step)
		s.Require().NotNil(saved.Event)
		s.Equal(int64(1), saved.Revision)
	})
}

func (s *WizardCommandsTestSuite) TestSubmitEquipment() {
	s.Run("guard failure still persists the selection", func() {
		ev := s.event()
		snap := &wizard.Snapshot{Step: wizard.StepEquipment, Event: &ev, Revision: 1}
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(snap, nil).Times(1)

		var saved wizard.Snapshot
		s.draftRepo.EXPECT().Save(gomock.Any(), s.sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, sn wizard.Snapshot) error {
				saved = sn
				return nil
			}).Times(1)

		extras, err := quote.NewEquipment(quote.EquipmentSpec{FogMachine: true})
		s.Require().NoError(err)

		view, err := s.uc.SubmitEquipment(context.Background(), s.sessionID, extras)
		s.ErrorIs(err, quote.ErrNoBasicService)
		s.Require().NotNil(view)
		s.Equal("equipment", view.StepName)
		s.Require().NotNil(saved.Equipment)
		s.True(saved.Equipment.FogMachine())
	})

	s.Run("valid selection advances to review", func() {
		ev := s.event()
		snap := &wizard.Snapshot{Step: wizard.StepEquipment, Event: &ev, Revision: 1}
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(snap, nil).Times(1)
		s.draftRepo.EXPECT().Save(gomock.Any(), s.sessionID, gomock.Any()).Return(nil).Times(1)

		view, err := s.uc.SubmitEquipment(context.Background(), s.sessionID, s.equipment())
		s.Require().NoError(err)
		s.Equal("review", view.StepName)
		s.Equal(int64(210000), view.EquipmentTotal)
		s.Equal(int64(105000), view.Deposit)
	})
}

func (s *WizardCommandsTestSuite) TestNext() {
	s.Run("no draft means nothing to advance", func() {
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(nil, nil).Times(1)

		_, err := s.uc.Next(context.Background(), s.sessionID)
		s.ErrorIs(err, errs.ErrDraftNotFound)
	})

	s.Run("review to result derives the quote", func() {
		ev := s.event()
		eq := s.equipment()
		snap := &wizard.Snapshot{Step: wizard.StepReview, Event: &ev, Equipment: &eq, Revision: 2}
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(snap, nil).Times(1)
		s.draftRepo.EXPECT().Save(gomock.Any(), s.sessionID, gomock.Any()).Return(nil).Times(1)

		view, err := s.uc.Next(context.Background(), s.sessionID)
		s.Require().NoError(err)
		s.Equal("result", view.StepName)
		s.Require().NotNil(view.Quote)
		s.Equal(int64(210000), view.Quote.Basic.Price)
		s.Equal(int64(252000), view.Quote.Standard.Price)
		s.Equal(int64(315000), view.Quote.Premium.Price)
	})
}

func (s *WizardCommandsTestSuite) TestCheckoutPreconditions() {
	s.Run("no draft", func() {
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(nil, nil).Times(1)

		_, err := s.uc.Checkout(context.Background(), s.sessionID, s.contact())
		s.ErrorIs(err, errs.ErrDraftNotFound)
	})

	s.Run("checkout not open", func() {
		ev := s.event()
		eq := s.equipment()
		snap := &wizard.Snapshot{Step: wizard.StepResult, Event: &ev, Equipment: &eq, Revision: 2}
		s.draftRepo.EXPECT().Load(gomock.Any(), s.sessionID).Return(snap, nil).Times(1)

		_, err := s.uc.Checkout(context.Background(), s.sessionID, s.contact())
		s.ErrorIs(err, errs.ErrCheckoutNotOpen)
	})
}

func (s *WizardCommandsTestSuite) contact() quote.Contact {
	ct, err := quote.NewContact("Lucia Fernandez", "lucia@example.com", "+54 11 4444-2020", true, quote.PayOnlineGateway)
	s.Require().NoError(err)
	return ct
}

func (s *WizardCommandsTestSuite) TestDiscard() {
	s.Run("clears the draft", func() {
		s.draftRepo.EXPECT().Clear(gomock.Any(), s.sessionID).Return(nil).Times(1)
		s.NoError(s.uc.Discard(context.Background(), s.sessionID))
	})

	s.Run("store failure is marked", func() {
		s.draftRepo.EXPECT().Clear(gomock.Any(), s.sessionID).Return(errs.New("redis down")).Times(1)
		s.ErrorIs(s.uc.Discard(context.Background(), s.sessionID), errs.ErrDraftStoreFailed)
	})
}
