package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lifeline-app/backend/internal/models"
	"github.com/lifeline-app/backend/internal/store"
)

// ErrSessionNotFound is returned when no snapshot exists for the id.
var ErrSessionNotFound = errors.New("flow: session not found")

// Service persists sessions around the pure transition functions. Every
// mutation snapshots the whole session so an interrupted report resumes
// exactly where it stopped.
type Service struct {
	Store  store.Store
	Logger zerolog.Logger

	now func() time.Time
}

func NewService(st store.Store, logger zerolog.Logger) *Service {
	return &Service{Store: st, Logger: logger, now: time.Now}
}

// Create starts a fresh session with a generated id and persists it.
func (s *Service) Create(ctx context.Context) (*models.SessionState, error) {
	sess := NewSession(uuid.NewString(), s.now())
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get restores a session snapshot. Unknown ids map to ErrSessionNotFound;
// a snapshot that no longer parses is treated the same way after a warning,
// so the client starts over instead of crashing into garbage.
func (s *Service) Get(ctx context.Context, id string) (*models.SessionState, error) {
	raw, err := s.Store.LoadSession(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess models.SessionState
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.Logger.Warn().Str("session_id", id).Err(err).
			Msg("session snapshot corrupt, discarding")
		return nil, ErrSessionNotFound
	}
	if sess.ID == "" {
		sess.ID = id
	}
	if len(sess.Stack) == 0 {
		sess.Stack = []models.Screen{models.ScreenHome}
	}
	return &sess, nil
}

// Mutate loads the session, applies fn, and persists the result. The
// snapshot is written even when fn leaves the session untouched; rewrites
// are idempotent and cheaper than tracking dirtiness.
func (s *Service) Mutate(ctx context.Context, id string, fn func(*models.SessionState) error) (*models.SessionState, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Delete discards a session snapshot.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Store.DeleteSession(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, sess *models.SessionState) error {
	sess.UpdatedAt = s.now()
	doc, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.Store.SaveSession(ctx, sess.ID, doc); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
