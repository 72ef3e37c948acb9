package flow

import (
	"errors"
	"testing"

	"github.com/lifeline-app/backend/internal/master"
	"github.com/lifeline-app/backend/internal/models"
)

func newWizardSession() *models.SessionState {
	s := NewSession("sess-w", testTime)
	StartWizard(s, testTime)
	return s
}

func TestStartWizardStampsDiscoveryTime(t *testing.T) {
	s := newWizardSession()
	if s.Wizard.StartedAt != "2025-03-14 09:30" {
		t.Fatalf("unexpected discovery time %q", s.Wizard.StartedAt)
	}
	if got := CurrentScreen(s); got != models.ScreenTriage {
		t.Fatalf("wizard starts on triage, got %q", got)
	}
}

func TestTriageGateBlocksNextUntilBothAnswered(t *testing.T) {
	s := newWizardSession()

	if err := NextFromTriage(s); !errors.Is(err, ErrTriageIncomplete) {
		t.Fatalf("expected gate error, got %v", err)
	}
	if err := AnswerTriage(s, models.AnswerNo, ""); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := NextFromTriage(s); !errors.Is(err, ErrTriageIncomplete) {
		t.Fatalf("one answer must not pass the gate, got %v", err)
	}
	if err := AnswerTriage(s, "", models.AnswerUnknown); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := NextFromTriage(s); err != nil {
		t.Fatalf("both answers should pass: %v", err)
	}
	if got := CurrentScreen(s); got != models.ScreenLocation {
		t.Fatalf("expected location step, got %q", got)
	}
}

func TestQuickShareJumpSkipsTriageGate(t *testing.T) {
	s := newWizardSession()
	if err := GoToStep(s, models.ScreenReview); err != nil {
		t.Fatalf("quick share jump should be permitted: %v", err)
	}
	if got := CurrentScreen(s); got != models.ScreenReview {
		t.Fatalf("expected review, got %q", got)
	}
}

func TestGoToStepRejectsNonWizardScreens(t *testing.T) {
	s := newWizardSession()
	if err := GoToStep(s, models.ScreenEmployerPick); !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestAnswerTriageRejectsInvalidValue(t *testing.T) {
	s := newWizardSession()
	if err := AnswerTriage(s, "maybe", ""); err == nil {
		t.Fatalf("expected invalid answer error")
	}
}

func TestLocationSourcesOverwriteEachOther(t *testing.T) {
	rec := master.Defaults()
	s := newWizardSession()

	if err := SetLocationManual(s, "Dock 3"); err != nil {
		t.Fatalf("manual: %v", err)
	}
	if s.Wizard.Location.Name != "Dock 3" || s.Wizard.Location.Source != models.LocationManual {
		t.Fatalf("manual not applied: %+v", s.Wizard.Location)
	}

	SetLocationUnknown(s)
	if !s.Wizard.Location.IsUnknown || s.Wizard.Location.Name != "" {
		t.Fatalf("unknown must fully replace manual: %+v", s.Wizard.Location)
	}

	if err := SetLocationFromMap(s, "Dock"); err != nil {
		t.Fatalf("map: %v", err)
	}
	if s.Wizard.Location.IsUnknown || s.Wizard.Location.Source != models.LocationMap {
		t.Fatalf("map must fully replace unknown: %+v", s.Wizard.Location)
	}

	site := rec.SiteLocations[0]
	if err := SetLocationFromCatalog(s, &rec, site.ID); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if s.Wizard.Location.Name != site.Name {
		t.Fatalf("catalog pick not applied: %+v", s.Wizard.Location)
	}
}

func TestLocationQRSoftMiss(t *testing.T) {
	rec := master.Defaults()
	s := newWizardSession()

	SetLocationQR(s, &rec, "no-such-token")
	loc := s.Wizard.Location
	if loc.QRToken != "no-such-token" {
		t.Fatalf("token must be kept on a miss: %+v", loc)
	}
	if loc.Name != UnregisteredLocation {
		t.Fatalf("expected unregistered marker, got %q", loc.Name)
	}
	if loc.IsUnknown {
		t.Fatalf("a scanned token is not an unknown location")
	}
}

func TestAccidentTagToggle(t *testing.T) {
	rec := master.Defaults()
	s := newWizardSession()

	if err := ToggleAccidentTag(s, &rec, "fall"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := ToggleAccidentTag(s, &rec, "electric"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(s.Wizard.Accident.Tags) != 2 {
		t.Fatalf("expected two tags, got %v", s.Wizard.Accident.Tags)
	}
	if err := ToggleAccidentTag(s, &rec, "fall"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(s.Wizard.Accident.Tags) != 1 || s.Wizard.Accident.Tags[0] != "electric" {
		t.Fatalf("toggle off failed: %v", s.Wizard.Accident.Tags)
	}
	if err := ToggleAccidentTag(s, &rec, "bogus"); err == nil {
		t.Fatalf("unknown tag must be rejected")
	}
	ClearAccidentTags(s)
	if len(s.Wizard.Accident.Tags) != 0 {
		t.Fatalf("clear failed: %v", s.Wizard.Accident.Tags)
	}
}

func TestVictimResolution(t *testing.T) {
	rec := master.Defaults()
	s := newWizardSession()

	if err := SetVictimPerson(s, &rec, "staff-003"); err != nil {
		t.Fatalf("pick: %v", err)
	}
	if s.Wizard.Victim.PersonID != "staff-003" || s.Wizard.Victim.IsUnknown {
		t.Fatalf("pick not applied: %+v", s.Wizard.Victim)
	}

	SetVictimUnknown(s)
	if !s.Wizard.Victim.IsUnknown || s.Wizard.Victim.PersonID != "" {
		t.Fatalf("unknown must clear the pick: %+v", s.Wizard.Victim)
	}

	if err := SetVictimPerson(s, &rec, "ghost"); !errors.Is(err, ErrUnknownPerson) {
		t.Fatalf("expected ErrUnknownPerson, got %v", err)
	}
}

func TestVictimQRMatchAndMiss(t *testing.T) {
	rec := master.Defaults()
	rec.Personnel[0].QRToken = "HLM-001"
	s := newWizardSession()

	SetVictimQR(s, &rec, "HLM-001")
	if s.Wizard.Victim.PersonID != rec.Personnel[0].ID {
		t.Fatalf("token should resolve to the person: %+v", s.Wizard.Victim)
	}

	SetVictimQR(s, &rec, "HLM-999")
	v := s.Wizard.Victim
	if v.PersonID != "" || v.QRToken != "HLM-999" || v.Name != UnregisteredPerson {
		t.Fatalf("soft miss shape wrong: %+v", v)
	}
}
