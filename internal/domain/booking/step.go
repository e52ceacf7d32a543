package booking

// ===============================
// Passos do fluxo de agendamento
// ===============================

type Step int

const (
	StepStylist Step = iota + 1
	StepTreatment
	StepDateTime
	StepDetails
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepStylist:
		return "stylist"
	case StepTreatment:
		return "treatment"
	case StepDateTime:
		return "datetime"
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}
