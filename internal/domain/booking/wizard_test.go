package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func testStaff() *models.Staff {
	return &models.Staff{ID: 7, SalonID: 1, Name: "Emma Johnson", Role: "stylist", Active: true}
}

func testTreatment() *models.Treatment {
	return &models.Treatment{ID: 3, SalonID: 1, Name: "Corte feminino", DurationMin: 60, Price: 45, Active: true}
}

func validDetails() DetailsInput {
	return DetailsInput{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Phone: "11999990000",
		Notes: "primeira visita",
	}
}

// avança um wizard novo até o passo pedido
func wizardAt(t *testing.T, step Step) *Wizard {
	t.Helper()

	w := NewWizard(1)
	if step == StepStylist {
		return w
	}
	require.NoError(t, w.SelectStylist(testStaff()))
	if step == StepTreatment {
		return w
	}
	require.NoError(t, w.SelectTreatment(testTreatment()))
	if step == StepDateTime {
		return w
	}
	require.NoError(t, w.SelectDateTime("2030-06-03", "10:00"))
	if step == StepDetails {
		return w
	}
	require.NoError(t, w.SubmitDetails(validDetails()))
	if step == StepPayment {
		return w
	}
	require.NoError(t, w.SkipDeposit())
	return w
}

func TestWizardHappyPathSkipDeposit(t *testing.T) {
	w := NewWizard(1)
	assert.Equal(t, StepStylist, w.Step())

	require.NoError(t, w.SelectStylist(testStaff()))
	require.NoError(t, w.SelectTreatment(testTreatment()))
	assert.Equal(t, 60, w.DurationMin())

	require.NoError(t, w.SelectDateTime("2030-06-03", "10:00"))
	require.NoError(t, w.SubmitDetails(validDetails()))
	require.NoError(t, w.SkipDeposit())
	assert.Equal(t, StepConfirmation, w.Step())

	draft, err := w.Complete()
	require.NoError(t, err)

	assert.Equal(t, uint(1), draft.SalonID)
	assert.Equal(t, uint(7), draft.StaffID)
	assert.Equal(t, uint(3), draft.TreatmentID)
	assert.Equal(t, "2030-06-03", draft.Date)
	assert.Equal(t, "10:00", draft.Time)
	assert.Equal(t, "Maria Silva", draft.CustomerName)
	assert.Equal(t, "maria@example.com", draft.CustomerEmail)
	assert.Equal(t, "11999990000", draft.CustomerPhone)
	assert.False(t, draft.DepositPaid)
}

func TestWizardRejectsOutOfOrderInput(t *testing.T) {
	w := NewWizard(1)

	err := w.SelectTreatment(testTreatment())
	assert.True(t, httperr.IsBusiness(err, "wrong_step"))

	err = w.SkipDeposit()
	assert.True(t, httperr.IsBusiness(err, "wrong_step"))

	_, err = w.Complete()
	assert.True(t, httperr.IsBusiness(err, "wrong_step"))
}

func TestWizardRejectsInactiveStaff(t *testing.T) {
	w := NewWizard(1)

	staff := testStaff()
	staff.Active = false

	err := w.SelectStylist(staff)
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
	assert.Equal(t, StepStylist, w.Step())
}

func TestWizardDateTimeRequiresBoth(t *testing.T) {
	w := wizardAt(t, StepDateTime)

	err := w.SelectDateTime("2030-06-03", "")
	assert.True(t, httperr.IsBusiness(err, "missing_date_or_time"))

	err = w.SelectDateTime("", "10:00")
	assert.True(t, httperr.IsBusiness(err, "missing_date_or_time"))

	err = w.SelectDateTime("03/06/2030", "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	assert.Equal(t, StepDateTime, w.Step())
}

func TestWizardBackKeepsEarlierChoices(t *testing.T) {
	w := wizardAt(t, StepDateTime)

	require.NoError(t, w.Back())
	assert.Equal(t, StepTreatment, w.Step())

	// escolha anterior de profissional permanece
	assert.Equal(t, uint(7), w.Draft().StaffID)

	// reescolher o serviço sobrescreve apenas o treatment_id
	other := &models.Treatment{ID: 9, SalonID: 1, Name: "Luzes", DurationMin: 120, Price: 95, Active: true}
	require.NoError(t, w.SelectTreatment(other))

	assert.Equal(t, uint(9), w.Draft().TreatmentID)
	assert.Equal(t, uint(7), w.Draft().StaffID)
	assert.Equal(t, 120, w.DurationMin())
}

func TestWizardBackBounds(t *testing.T) {
	w := NewWizard(1)
	assert.True(t, httperr.IsBusiness(w.Back(), "wrong_step"))

	w = wizardAt(t, StepConfirmation)
	assert.True(t, httperr.IsBusiness(w.Back(), "wrong_step"))
}

func TestWizardDetailsValidation(t *testing.T) {
	w := wizardAt(t, StepDetails)

	in := validDetails()
	in.Email = "not-an-email"

	err := w.SubmitDetails(in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	// estado inalterado e nada gravado no rascunho
	assert.Equal(t, StepDetails, w.Step())
	assert.Empty(t, w.Draft().CustomerName)
	assert.Empty(t, w.Draft().CustomerEmail)
}

func TestWizardDetailsValidationAllFields(t *testing.T) {
	w := wizardAt(t, StepDetails)

	err := w.SubmitDetails(DetailsInput{Name: "  ", Email: "", Phone: " "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "phone")
}

func TestWizardDepositSuccess(t *testing.T) {
	w := wizardAt(t, StepPayment)

	attempt, err := w.BeginDeposit()
	require.NoError(t, err)
	assert.True(t, w.Processing())

	// reentrância bloqueada enquanto pendente
	_, err = w.BeginDeposit()
	assert.True(t, httperr.IsBusiness(err, "payment_in_progress"))
	assert.True(t, httperr.IsBusiness(w.SkipDeposit(), "payment_in_progress"))
	assert.True(t, httperr.IsBusiness(w.Back(), "payment_in_progress"))

	applied := w.ResolveDeposit(attempt, nil)
	assert.True(t, applied)
	assert.False(t, w.Processing())
	assert.Equal(t, StepConfirmation, w.Step())
	assert.True(t, w.Draft().DepositPaid)
}

func TestWizardDepositFailureReturnsToPayment(t *testing.T) {
	w := wizardAt(t, StepPayment)

	attempt, err := w.BeginDeposit()
	require.NoError(t, err)

	applied := w.ResolveDeposit(attempt, errors.New("cartão recusado"))
	assert.True(t, applied)

	// nunca fica preso em Processing: volta interativo com erro exposto
	assert.False(t, w.Processing())
	assert.Equal(t, StepPayment, w.Step())
	assert.Equal(t, "cartão recusado", w.PaymentError())
	assert.False(t, w.Draft().DepositPaid)

	// retry funciona
	attempt, err = w.BeginDeposit()
	require.NoError(t, err)
	assert.Empty(t, w.PaymentError())
	assert.True(t, w.ResolveDeposit(attempt, nil))
	assert.Equal(t, StepConfirmation, w.Step())
}

func TestWizardLateDepositResolutionIsNoOp(t *testing.T) {
	w := wizardAt(t, StepPayment)

	first, err := w.BeginDeposit()
	require.NoError(t, err)

	// a primeira tentativa falha, o cliente tenta de novo
	require.True(t, w.ResolveDeposit(first, errors.New("timeout")))
	second, err := w.BeginDeposit()
	require.NoError(t, err)

	// resolução atrasada da primeira chamada chega agora: ignorada
	assert.False(t, w.ResolveDeposit(first, nil))
	assert.True(t, w.Processing())
	assert.Equal(t, StepPayment, w.Step())
	assert.False(t, w.Draft().DepositPaid)

	// a tentativa corrente segue válida
	assert.True(t, w.ResolveDeposit(second, nil))
	assert.Equal(t, StepConfirmation, w.Step())
}

func TestWizardResolveWithoutBeginIsNoOp(t *testing.T) {
	w := wizardAt(t, StepPayment)

	assert.False(t, w.ResolveDeposit(1, nil))
	assert.Equal(t, StepPayment, w.Step())
}

func TestWizardSnapshotRoundTrip(t *testing.T) {
	w := wizardAt(t, StepPayment)

	restored, err := Restore(w.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, w.Step(), restored.Step())
	assert.Equal(t, w.Draft(), restored.Draft())
	assert.Equal(t, w.DurationMin(), restored.DurationMin())

	// sessão restaurada continua o fluxo normalmente
	require.NoError(t, restored.SkipDeposit())
	draft, err := restored.Complete()
	require.NoError(t, err)
	assert.False(t, draft.DepositPaid)
}

func TestWizardRestoreRejectsGarbage(t *testing.T) {
	_, err := Restore(Snapshot{Step: 0})
	assert.True(t, httperr.IsBusiness(err, "invalid_session"))

	_, err = Restore(Snapshot{Step: 42})
	assert.True(t, httperr.IsBusiness(err, "invalid_session"))
}

func TestWizardCompleteKeepsDraft(t *testing.T) {
	w := wizardAt(t, StepConfirmation)

	first, err := w.Complete()
	require.NoError(t, err)

	// gravação falhou? o rascunho continua disponível para retry
	second, err := w.Complete()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWizardRestoreExpiredProcessingUnblocks(t *testing.T) {
	w := wizardAt(t, StepPayment)

	attempt, err := w.BeginDeposit()
	require.NoError(t, err)

	// save final nunca aconteceu: o snapshot fica Processing no Redis
	snap := w.Snapshot()
	snap.PayDeadline = time.Now().Add(-time.Second)

	restored, err := RestoreAt(snap, time.Now())
	require.NoError(t, err)

	assert.Equal(t, StepPayment, restored.Step())
	assert.False(t, restored.Processing())
	assert.NotEmpty(t, restored.PaymentError())

	// a resolução da tentativa antiga chega atrasada e é descartada
	assert.False(t, restored.ResolveDeposit(attempt, nil))
	assert.False(t, restored.Draft().DepositPaid)

	// o passo de pagamento volta a aceitar ações
	next, err := restored.BeginDeposit()
	require.NoError(t, err)
	assert.Equal(t, attempt+1, next)
}

func TestWizardRestoreActiveProcessingStaysLocked(t *testing.T) {
	w := wizardAt(t, StepPayment)

	attempt, err := w.BeginDeposit()
	require.NoError(t, err)

	restored, err := RestoreAt(w.Snapshot(), time.Now())
	require.NoError(t, err)
	require.True(t, restored.Processing())

	_, err = restored.BeginDeposit()
	assert.True(t, httperr.IsBusiness(err, "payment_in_progress"))
	err = restored.SkipDeposit()
	assert.True(t, httperr.IsBusiness(err, "payment_in_progress"))
	err = restored.Back()
	assert.True(t, httperr.IsBusiness(err, "payment_in_progress"))

	// dentro do prazo a resolução ainda se aplica normalmente
	assert.True(t, restored.ResolveDeposit(attempt, nil))
	assert.Equal(t, StepConfirmation, restored.Step())
	assert.True(t, restored.Draft().DepositPaid)
}

func TestWizardRestoreProcessingWithoutDeadlineHeals(t *testing.T) {
	// snapshot antigo, gravado antes do prazo existir
	snap := Snapshot{
		Step:       StepPayment,
		Draft:      Draft{SalonID: 1},
		Processing: true,
		PayAttempt: 1,
	}

	restored, err := RestoreAt(snap, time.Now())
	require.NoError(t, err)
	assert.False(t, restored.Processing())

	_, err = restored.BeginDeposit()
	require.NoError(t, err)
}

func TestWizardDepositSuccessClearsDeadline(t *testing.T) {
	w := wizardAt(t, StepPayment)

	attempt, err := w.BeginDeposit()
	require.NoError(t, err)
	require.True(t, w.ResolveDeposit(attempt, errors.New("cartão recusado")))

	assert.True(t, w.Snapshot().PayDeadline.IsZero())
}
