package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/session"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER — fluxo de agendamento em seis passos
////////////////////////////////////////////////////////

type WizardHandler struct {
	db       *gorm.DB
	repo     domain.Repository
	sessions *session.Store
	charger  payment.DepositCharger
	config   *config.Config
	audit    *audit.Dispatcher
}

func NewWizardHandler(
	db *gorm.DB,
	sessions *session.Store,
	charger payment.DepositCharger,
	cfg *config.Config,
) *WizardHandler {
	logger := audit.New(db)
	dispatcher := audit.NewDispatcher(logger)

	return &WizardHandler{
		db:       db,
		repo:     infraRepo.NewBookingGormRepository(db),
		sessions: sessions,
		charger:  charger,
		config:   cfg,
		audit:    dispatcher,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type SelectStylistRequest struct {
	StaffID uint `json:"staff_id" binding:"required"`
}

type SelectTreatmentRequest struct {
	TreatmentID uint `json:"treatment_id" binding:"required"`
}

type SelectDateTimeRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type DepositRequest struct {
	CardToken string `json:"card_token" binding:"required"`
}

////////////////////////////////////////////////////////
// START / STATE
////////////////////////////////////////////////////////

func (h *WizardHandler) Start(c *gin.Context) {
	slug := c.Param("slug")

	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	id, w, err := h.sessions.Create(c.Request.Context(), salon.ID)
	if err != nil {
		httperr.Internal(c, "session_create_failed", "Erro ao iniciar a sessão.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"salon": gin.H{
			"id":   salon.ID,
			"name": salon.Name,
			"slug": salon.Slug,
		},
		"state": wizardState(w),
	})
}

func (h *WizardHandler) State(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": wizardState(w)})
}

////////////////////////////////////////////////////////
// PASSOS 1–4
////////////////////////////////////////////////////////

func (h *WizardHandler) SelectStylist(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req SelectStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// inativo ou de outro salão conta como inexistente
	staff, err := h.repo.GetStaff(c.Request.Context(), w.Draft().SalonID, req.StaffID)
	if err != nil {
		staff = nil
	}

	h.applyAndSave(c, w, w.SelectStylist(staff))
}

func (h *WizardHandler) SelectTreatment(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req SelectTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	treatment, err := h.repo.GetTreatment(c.Request.Context(), w.Draft().SalonID, req.TreatmentID)
	if err != nil {
		treatment = nil
	}

	h.applyAndSave(c, w, w.SelectTreatment(treatment))
}

func (h *WizardHandler) SelectDateTime(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req SelectDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.applyAndSave(c, w, w.SelectDateTime(req.Date, req.Time))
}

func (h *WizardHandler) SubmitDetails(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req domain.DetailsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.applyAndSave(c, w, w.SubmitDetails(req))
}

////////////////////////////////////////////////////////
// PASSO 5 — sinal
////////////////////////////////////////////////////////

func (h *WizardHandler) Deposit(c *gin.Context) {
	id := c.Param("session")

	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	attempt, err := w.BeginDeposit()
	if err != nil {
		h.writeBusiness(c, err)
		return
	}

	if err := h.sessions.Save(c.Request.Context(), id, w); err != nil {
		httperr.Internal(c, "session_save_failed", "Erro ao gravar a sessão.")
		return
	}

	draft := w.Draft()
	chargeErr := func() error {
		_, err := h.charger.ChargeDeposit(c.Request.Context(), payment.ChargeInput{
			Amount:      h.config.DepositAmount,
			Description: fmt.Sprintf("Sinal de agendamento #%d", draft.SalonID),
			PayerEmail:  draft.CustomerEmail,
			CardToken:   req.CardToken,
		})
		return err
	}()

	// resolução atrasada (sessão mexida no meio tempo) é descartada
	if current, err := h.sessions.Load(c.Request.Context(), id); err == nil {
		w = current
	}
	applied := w.ResolveDeposit(attempt, chargeErr)

	if applied {
		if err := h.sessions.Save(c.Request.Context(), id, w); err != nil {
			httperr.Internal(c, "session_save_failed", "Erro ao gravar a sessão.")
			return
		}
	}

	if chargeErr != nil {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error_code": "deposit_failed",
			"message":    w.PaymentError(),
			"state":      wizardState(w),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": wizardState(w)})
}

func (h *WizardHandler) SkipDeposit(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}
	h.applyAndSave(c, w, w.SkipDeposit())
}

////////////////////////////////////////////////////////
// VOLTAR / CONCLUSÃO
////////////////////////////////////////////////////////

func (h *WizardHandler) Back(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}
	h.applyAndSave(c, w, w.Back())
}

func (h *WizardHandler) Complete(c *gin.Context) {
	id := c.Param("session")

	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	draft, err := w.Complete()
	if err != nil {
		h.writeBusiness(c, err)
		return
	}

	uc := booking.NewCompleteBooking(h.repo, h.audit)

	ap, err := uc.Execute(c.Request.Context(), draft)
	if err != nil {
		// rascunho preservado na sessão: o cliente pode tentar de novo
		mapBookingErrors(c, err)
		return
	}

	_ = h.sessions.Delete(c.Request.Context(), id)

	c.JSON(http.StatusCreated, ap)
}

////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////

func (h *WizardHandler) loadSession(c *gin.Context) (*domain.Wizard, bool) {
	id := c.Param("session")

	w, err := h.sessions.Load(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "session_not_found") || httperr.IsBusiness(err, "invalid_session") {
			httperr.NotFound(c, "session_not_found", "Sessão não encontrada ou expirada.")
			return nil, false
		}
		httperr.Internal(c, "session_load_failed", "Erro ao carregar a sessão.")
		return nil, false
	}

	return w, true
}

// aplica o resultado de uma transição e grava a sessão de volta
func (h *WizardHandler) applyAndSave(c *gin.Context, w *domain.Wizard, transitionErr error) {
	if transitionErr != nil {
		var verr *domain.ValidationError
		if errors.As(transitionErr, &verr) {
			httperr.ValidationFailed(c, verr.Fields)
			return
		}
		h.writeBusiness(c, transitionErr)
		return
	}

	id := c.Param("session")
	if err := h.sessions.Save(c.Request.Context(), id, w); err != nil {
		httperr.Internal(c, "session_save_failed", "Erro ao gravar a sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": wizardState(w)})
}

func (h *WizardHandler) writeBusiness(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "wrong_step"):
		httperr.Conflict(c, "wrong_step", "Passo fora de ordem.")
	case httperr.IsBusiness(err, "payment_in_progress"):
		httperr.Conflict(c, "payment_in_progress", "Pagamento em andamento.")
	case httperr.IsBusiness(err, "staff_not_found"):
		httperr.BadRequest(c, "staff_not_found", "Profissional inválido.")
	case httperr.IsBusiness(err, "treatment_not_found"):
		httperr.BadRequest(c, "treatment_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "missing_date_or_time"):
		httperr.BadRequest(c, "missing_date_or_time", "Escolha data e horário.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou horário inválidos.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "salon_not_found"):
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
	case httperr.IsBusiness(err, "treatment_not_found"):
		httperr.BadRequest(c, "treatment_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "staff_not_found"):
		httperr.BadRequest(c, "staff_not_found", "Profissional inválido.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou horário inválidos.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário muito em cima da hora.")
	case httperr.IsBusiness(err, "outside_opening_hours"):
		httperr.BadRequest(c, "outside_opening_hours", "Fora do horário de funcionamento.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Horário já reservado.")
	default:
		httperr.Internal(c, "booking_failed", "Erro ao concluir o agendamento.")
	}
}

func wizardState(w *domain.Wizard) gin.H {
	return gin.H{
		"step":          int(w.Step()),
		"step_name":     w.Step().String(),
		"draft":         w.Draft(),
		"duration_min":  w.DurationMin(),
		"processing":    w.Processing(),
		"payment_error": w.PaymentError(),
	}
}
