package api

import (
	"errors"
	"net/http"

	reqdto "soundlight-quotes/internal/handler/dto/request"
	resdto "soundlight-quotes/internal/handler/dto/response"
	"soundlight-quotes/internal/handler/httperr"
	"soundlight-quotes/internal/handler/middleware"
	"soundlight-quotes/internal/pkg/clock"
	"soundlight-quotes/internal/pkg/errs"

	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
	"soundlight-quotes/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizardUseCase commands.WizardCommands
	clock         clock.Clock
}

func NewWizardHandler(wizardUseCase commands.WizardCommands, clk clock.Clock) *WizardHandler {
	return &WizardHandler{
		wizardUseCase: wizardUseCase,
		clock:         clk,
	}
}

// @Summary Wizard state
// @Description Current step and accumulated draft for this session
// @Tags wizard
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Router /quote/wizard [get]
func (h *WizardHandler) GetState(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardUseCase.GetState(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Submit event details
// @Description Store step-1 data; advances past the event step
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.EventDetailsRequest true "Event details"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /quote/wizard/event [put]
func (h *WizardHandler) SubmitEvent(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.EventDetailsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	ev, err := req.ToDomain(quote.DateOf(h.clock.Now()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.wizardUseCase.SubmitEvent(c.Request.Context(), sessionID, ev)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Submit equipment selection
// @Description Store step-2 data; the selection is kept even when the
// @Description basic-service or DJ-schedule guard blocks advancing
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.EquipmentRequest true "Equipment selection"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quote/wizard/equipment [put]
func (h *WizardHandler) SubmitEquipment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.EquipmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	eq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.wizardUseCase.SubmitEquipment(c.Request.Context(), sessionID, eq)
	if err != nil {
		if view != nil && isGuardViolation(err) {
			// 422 with the persisted state so the client can keep editing.
			_ = c.Error(err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  err.Error(),
				"wizard": resdto.FromWizardView(view),
			})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Advance to the next step
// @Description Moving Review to Result derives the three quote tiers
// @Tags wizard
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quote/wizard/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardUseCase.Next(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Go back one step
// @Tags wizard
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quote/wizard/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardUseCase.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Jump to an earlier step
// @Description Used by the review screen's edit links
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.EditStepRequest true "Target step"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quote/wizard/edit [post]
func (h *WizardHandler) EditStep(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.EditStepRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.wizardUseCase.EditStep(c.Request.Context(), sessionID, *req.Step)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Select a quote tier
// @Description Selecting a tier opens the checkout form
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.SelectTierRequest true "Tier id"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quote/wizard/tier [post]
func (h *WizardHandler) SelectTier(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectTierRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.wizardUseCase.SelectTier(c.Request.Context(), sessionID, quote.TierID(req.Tier))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Submit checkout
// @Description Creates the booking and returns its SL reference
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Contact and payment method"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /quote/wizard/checkout [post]
func (h *WizardHandler) Checkout(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	contact, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.wizardUseCase.Checkout(c.Request.Context(), sessionID, contact)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Discard the draft
// @Description Start over: clears this session's draft
// @Tags wizard
// @Success 204
// @Router /quote/wizard [delete]
func (h *WizardHandler) Discard(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.wizardUseCase.Discard(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No draft for this session", nil)
	case errors.Is(err, wizard.ErrCompleted):
		httperr.AbortWithError(c, http.StatusGone, err, "Wizard already completed", nil)
	case errors.Is(err, wizard.ErrUnknownStep):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown wizard step", nil)
	case errors.Is(err, errs.ErrCheckoutNotOpen), errors.Is(err, wizard.ErrCheckoutClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is not open", nil)
	case errors.Is(err, errs.ErrNoQuoteDerived), errors.Is(err, wizard.ErrNoQuote):
		httperr.AbortWithError(c, http.StatusConflict, err, "No quote derived yet", nil)
	case isGuardViolation(err),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrAtLastStep),
		errors.Is(err, wizard.ErrEventRequired),
		errors.Is(err, wizard.ErrNotAtResultStep),
		errors.Is(err, quote.ErrInvalidTier):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, errs.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, errs.ErrDatabaseOperationFailed):
		// Booking creation failed but the draft survived; a retry is safe.
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not record the booking, please try again", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
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
