package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListSalons struct {
	repo domain.Repository
}

func NewListSalons(repo domain.Repository) *ListSalons {
	return &ListSalons{repo: repo}
}

// Execute devolve o catálogo público de salões, filtrado pelo termo
// de busca quando informado. O termo é normalizado aqui para a
// comparação case-insensitive do repositório.
func (uc *ListSalons) Execute(
	ctx context.Context,
	query string,
) ([]dto.SalonCardDTO, error) {

	normalized := strings.ToLower(strings.TrimSpace(query))

	salons, err := uc.repo.SearchSalons(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return dto.FromSalons(salons), nil
}
