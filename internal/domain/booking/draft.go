package booking

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ===============================
// Rascunho do agendamento
// ===============================

// Draft acumula as escolhas do cliente ao longo do fluxo.
// Pertence exclusivamente ao Wizard durante a sessão.
type Draft struct {
	SalonID     uint   `json:"salon_id"`
	StaffID     uint   `json:"staff_id"`
	TreatmentID uint   `json:"treatment_id"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`

	DepositPaid bool `json:"deposit_paid"`
}

// ===============================
// Dados do cliente (passo 4)
// ===============================

type DetailsInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// mesma forma básica local@dominio.tld usada no formulário original
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("campos inválidos: %s", strings.Join(keys, ", "))
}

// Validate aplica as regras do passo de dados do cliente.
// Nada é gravado no rascunho enquanto houver erro.
func (in DetailsInput) Validate() *ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "Nome é obrigatório."
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "E-mail é obrigatório."
	} else if !emailPattern.MatchString(email) {
		fields["email"] = "E-mail inválido."
	}

	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "Telefone é obrigatório."
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
