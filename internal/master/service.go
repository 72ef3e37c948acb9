package master

import (
	"context"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/lifeline-app/backend/internal/models"
	"github.com/lifeline-app/backend/internal/store"
)

// Service owns the master record: load-with-merge at startup, whole-record
// synchronous save on every admin edit. Reads return a copy so callers never
// observe a half-applied edit.
type Service struct {
	Store  store.Store
	Logger zerolog.Logger

	mu      sync.RWMutex
	current models.MasterRecord
	loaded  bool
}

func NewService(st store.Store, logger zerolog.Logger) *Service {
	return &Service{Store: st, Logger: logger}
}

// Load reads the persisted master document and merges it over the built-in
// defaults. Absence or corruption is non-fatal: the defaults are used and a
// warning is logged.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := Defaults()
	raw, err := s.Store.LoadMaster(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.current = def
	case err != nil:
		return err
	default:
		merged, mergeErr := Merge(def, raw)
		if mergeErr != nil {
			s.Logger.Warn().Err(mergeErr).Msg("master record corrupt, falling back to defaults")
		}
		s.current = merged
	}
	s.loaded = true
	return nil
}

// Current returns a deep copy of the master record.
func (s *Service) Current() models.MasterRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRecord(s.current)
}

// Update replaces the whole record and persists it synchronously.
func (s *Service) Update(ctx context.Context, record models.MasterRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Version = SchemaVersion
	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := s.Store.SaveMaster(ctx, doc); err != nil {
		return err
	}
	s.current = record
	return nil
}

// Import merges an exported document through the same merge-by-id rule as
// load, then persists the result.
func (s *Service) Import(ctx context.Context, raw []byte) (models.MasterRecord, error) {
	merged, err := Merge(Defaults(), raw)
	if err != nil {
		return models.MasterRecord{}, err
	}
	if err := s.Update(ctx, merged); err != nil {
		return models.MasterRecord{}, err
	}
	return merged, nil
}

// Export emits the record as an indented JSON document.
func (s *Service) Export() ([]byte, error) {
	rec := s.Current()
	return json.MarshalIndent(rec, "", "  ")
}

// Mutate applies fn to the record under the write lock and persists the
// result. fn returning an error aborts without saving.
func (s *Service) Mutate(ctx context.Context, fn func(*models.MasterRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := copyRecord(s.current)
	if err := fn(&record); err != nil {
		return err
	}
	record.Version = SchemaVersion
	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := s.Store.SaveMaster(ctx, doc); err != nil {
		return err
	}
	s.current = record
	return nil
}

func copyRecord(m models.MasterRecord) models.MasterRecord {
	out := m
	out.Employers = append([]models.Employer(nil), m.Employers...)
	for i := range out.Employers {
		out.Employers[i].Emails = append([]string(nil), m.Employers[i].Emails...)
	}
	out.Personnel = append([]models.Person(nil), m.Personnel...)
	out.Symptoms = append([]models.Symptom(nil), m.Symptoms...)
	for i := range out.Symptoms {
		out.Symptoms[i].EmergencyGroups = append([]models.RecipientGroup(nil), m.Symptoms[i].EmergencyGroups...)
		out.Symptoms[i].ObserveGroups = append([]models.RecipientGroup(nil), m.Symptoms[i].ObserveGroups...)
	}
	out.BodyLocations = append([]models.BodyLocation(nil), m.BodyLocations...)
	out.SiteLocations = append([]models.SiteLocation(nil), m.SiteLocations...)
	out.AccidentTags = append([]models.AccidentTag(nil), m.AccidentTags...)
	return out
}
