package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// WIZARD — máquina de estados do agendamento
// ======================================================
//
// Seis passos ordenados:
//
//	1 stylist → 2 treatment → 3 datetime → 4 details → 5 payment → 6 confirmation
//
// Cada transição valida o passo atual e grava no rascunho. Uma sessão
// atende um único cliente: não há estado compartilhado entre sessões.

type Wizard struct {
	step  Step
	draft Draft

	// duração do serviço escolhido, repassada à consulta de horários
	durationMin int

	// sub-estado do passo de pagamento
	processing  bool
	payAttempt  int
	payErr      string
	payDeadline time.Time
}

// prazo máximo de uma tentativa de cobrança; restaurar a sessão depois
// disso trata a tentativa como falha e libera o passo de pagamento
const depositAttemptTTL = 2 * time.Minute

func NewWizard(salonID uint) *Wizard {
	return &Wizard{
		step:  StepStylist,
		draft: Draft{SalonID: salonID},
	}
}

// --------- Leitura ---------

func (w *Wizard) Step() Step        { return w.step }
func (w *Wizard) Draft() Draft      { return w.draft }
func (w *Wizard) DurationMin() int  { return w.durationMin }
func (w *Wizard) Processing() bool  { return w.processing }
func (w *Wizard) PaymentError() string { return w.payErr }

// --------- Passo 1 → 2 ---------

func (w *Wizard) SelectStylist(staff *models.Staff) error {
	if w.step != StepStylist {
		return httperr.ErrBusiness("wrong_step")
	}
	if staff == nil || !staff.Active {
		return httperr.ErrBusiness("staff_not_found")
	}

	w.draft.StaffID = staff.ID
	w.step = StepTreatment
	return nil
}

// --------- Passo 2 → 3 ---------

func (w *Wizard) SelectTreatment(t *models.Treatment) error {
	if w.step != StepTreatment {
		return httperr.ErrBusiness("wrong_step")
	}
	if t == nil || !t.Active || t.DurationMin <= 0 {
		return httperr.ErrBusiness("treatment_not_found")
	}

	w.draft.TreatmentID = t.ID
	w.durationMin = t.DurationMin
	w.step = StepDateTime
	return nil
}

// --------- Passo 3 → 4 ---------

func (w *Wizard) SelectDateTime(date, clock string) error {
	if w.step != StepDateTime {
		return httperr.ErrBusiness("wrong_step")
	}

	// data e horário precisam estar ambos escolhidos e bem formados
	if strings.TrimSpace(date) == "" || strings.TrimSpace(clock) == "" {
		return httperr.ErrBusiness("missing_date_or_time")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	w.draft.Date = date
	w.draft.Time = clock
	w.step = StepDetails
	return nil
}

// --------- Passo 4 → 5 ---------

func (w *Wizard) SubmitDetails(in DetailsInput) error {
	if w.step != StepDetails {
		return httperr.ErrBusiness("wrong_step")
	}

	if verr := in.Validate(); verr != nil {
		// estado inalterado, nenhum campo gravado
		return verr
	}

	w.draft.CustomerName = strings.TrimSpace(in.Name)
	w.draft.CustomerEmail = strings.TrimSpace(in.Email)
	w.draft.CustomerPhone = strings.TrimSpace(in.Phone)
	w.draft.Notes = strings.TrimSpace(in.Notes)
	w.step = StepPayment
	return nil
}

// --------- Passo 5 (portão de pagamento) ---------

// BeginDeposit entra no sub-estado Processing e devolve o token da
// tentativa. Chamadas reentrantes enquanto pendente são rejeitadas.
func (w *Wizard) BeginDeposit() (int, error) {
	if w.step != StepPayment {
		return 0, httperr.ErrBusiness("wrong_step")
	}
	if w.processing {
		return 0, httperr.ErrBusiness("payment_in_progress")
	}

	w.processing = true
	w.payAttempt++
	w.payErr = ""
	w.payDeadline = time.Now().Add(depositAttemptTTL)
	return w.payAttempt, nil
}

// ResolveDeposit aplica o resultado da cobrança. Resoluções atrasadas
// (token antigo ou wizard fora do Processing) são ignoradas sem erro.
// Devolve true quando o resultado foi aplicado.
func (w *Wizard) ResolveDeposit(attempt int, chargeErr error) bool {
	if !w.processing || attempt != w.payAttempt {
		return false
	}

	w.processing = false
	w.payDeadline = time.Time{}

	if chargeErr != nil {
		// volta ao passo 5 interativo, com erro exposto para retry
		w.payErr = chargeErr.Error()
		return true
	}

	w.draft.DepositPaid = true
	w.step = StepConfirmation
	return true
}

// SkipDeposit avança sem cobrança
func (w *Wizard) SkipDeposit() error {
	if w.step != StepPayment {
		return httperr.ErrBusiness("wrong_step")
	}
	if w.processing {
		return httperr.ErrBusiness("payment_in_progress")
	}

	w.draft.DepositPaid = false
	w.step = StepConfirmation
	return nil
}

// --------- Voltar ---------

// Back retorna ao passo anterior sem descartar o que já foi
// preenchido: campos posteriores são apenas sobrescritos na reentrada.
func (w *Wizard) Back() error {
	if w.step <= StepStylist || w.step > StepPayment {
		return httperr.ErrBusiness("wrong_step")
	}
	if w.step == StepPayment && w.processing {
		return httperr.ErrBusiness("payment_in_progress")
	}

	w.step--
	return nil
}

// --------- Conclusão ---------

// Complete entrega o rascunho finalizado. O rascunho é preservado:
// se a gravação falhar, o cliente tenta de novo sem refazer os passos.
func (w *Wizard) Complete() (Draft, error) {
	if w.step != StepConfirmation {
		return Draft{}, httperr.ErrBusiness("wrong_step")
	}
	return w.draft, nil
}

// ======================================================
// SNAPSHOT — persistência da sessão
// ======================================================

type Snapshot struct {
	Step        Step      `json:"step"`
	Draft       Draft     `json:"draft"`
	DurationMin int       `json:"duration_min"`
	Processing  bool      `json:"processing"`
	PayAttempt  int       `json:"pay_attempt"`
	PayErr      string    `json:"pay_err,omitempty"`
	PayDeadline time.Time `json:"pay_deadline"`
}

func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{
		Step:        w.step,
		Draft:       w.draft,
		DurationMin: w.durationMin,
		Processing:  w.processing,
		PayAttempt:  w.payAttempt,
		PayErr:      w.payErr,
		PayDeadline: w.payDeadline,
	}
}

func Restore(s Snapshot) (*Wizard, error) {
	return RestoreAt(s, time.Now())
}

// RestoreAt remonta o wizard a partir do snapshot. Um Processing cujo
// prazo já venceu (cobrança interrompida no meio, processo caiu, save
// final perdido) vira tentativa falha: o passo de pagamento volta a
// aceitar BeginDeposit, SkipDeposit e Back em vez de ficar travado até
// o TTL da sessão.
func RestoreAt(s Snapshot, now time.Time) (*Wizard, error) {
	if s.Step < StepStylist || s.Step > StepConfirmation {
		return nil, httperr.ErrBusiness("invalid_session")
	}

	w := &Wizard{
		step:        s.Step,
		draft:       s.Draft,
		durationMin: s.DurationMin,
		processing:  s.Processing,
		payAttempt:  s.PayAttempt,
		payErr:      s.PayErr,
		payDeadline: s.PayDeadline,
	}

	if w.processing && (w.payDeadline.IsZero() || !now.Before(w.payDeadline)) {
		w.processing = false
		w.payDeadline = time.Time{}
		w.payErr = "tempo de processamento esgotado, tente novamente"
	}

	return w, nil
}
