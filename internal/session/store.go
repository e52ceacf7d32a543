package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// Sessão do wizard no Redis
// ======================================================
//
// Uma sessão por cliente em andamento. O handler carrega o wizard,
// aplica uma transição e grava de volta; o TTL limpa rascunhos
// abandonados.

const sessionTTL = 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("booking_session:%s", id)
}

// Create inicia um wizard novo e devolve o id da sessão
func (s *Store) Create(ctx context.Context, salonID uint) (string, *booking.Wizard, error) {
	id := uuid.NewString()
	w := booking.NewWizard(salonID)

	if err := s.Save(ctx, id, w); err != nil {
		return "", nil, err
	}

	return id, w, nil
}

func (s *Store) Load(ctx context.Context, id string) (*booking.Wizard, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, httperr.ErrBusiness("session_not_found")
		}
		return nil, fmt.Errorf("session: load: %w", err)
	}

	var snap booking.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}

	return booking.Restore(snap)
}

func (s *Store) Save(ctx context.Context, id string, w *booking.Wizard) error {
	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKey(id), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}
