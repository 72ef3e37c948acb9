package master

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lifeline-app/backend/internal/models"
	"github.com/lifeline-app/backend/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemory(), zerolog.Nop())
}

func TestLoadWithoutDocumentUsesDefaults(t *testing.T) {
	svc := newTestService()
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	rec := svc.Current()
	if len(rec.Symptoms) == 0 || len(rec.Employers) == 0 {
		t.Fatalf("defaults not applied on empty store")
	}
}

func TestUpdatePersistsAndSurvivesReload(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(st, zerolog.Nop())
	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	rec := svc.Current()
	rec.GlobalContacts.SafetyHQ = "hq@example.net"
	if err := svc.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	// second service over the same store sees the edit merged over defaults
	svc2 := NewService(st, zerolog.Nop())
	if err := svc2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := svc2.Current().GlobalContacts.SafetyHQ; got != "hq@example.net" {
		t.Fatalf("edit lost across reload, got %q", got)
	}
}

func TestLoadCorruptDocumentFallsBackToDefaults(t *testing.T) {
	st := store.NewMemory()
	if err := st.SaveMaster(context.Background(), []byte("{broken")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewService(st, zerolog.Nop())
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load should not fail on corrupt doc: %v", err)
	}
	if len(svc.Current().Symptoms) == 0 {
		t.Fatalf("expected defaults after corrupt document")
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	svc := newTestService()
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	rec := svc.Current()
	rec.Employers[0].Name = "mutated"
	if svc.Current().Employers[0].Name == "mutated" {
		t.Fatalf("Current leaked internal state")
	}
}

func TestMutatePersists(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	err := svc.Mutate(ctx, func(rec *models.MasterRecord) error {
		rec.SendScope.RescueTeam = true
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if !svc.Current().SendScope.RescueTeam {
		t.Fatalf("mutation not applied")
	}
}
