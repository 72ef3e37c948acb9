package master

import (
	"testing"

	"github.com/lifeline-app/backend/internal/models"
)

func TestMergeOverridesFieldsAndKeepsDefaults(t *testing.T) {
	doc := []byte(`{
		"employers": [{"id": "a", "name": "Renamed A"}],
		"send_scope": {"safety_hq": false, "rescue_team": true, "ambulance_center": false, "company_emails": true}
	}`)

	merged, err := Merge(Defaults(), doc)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	a := merged.Employer("a")
	if a == nil {
		t.Fatalf("employer a missing after merge")
	}
	if a.Name != "Renamed A" {
		t.Fatalf("expected override to win, got %q", a.Name)
	}
	if len(a.Emails) == 0 {
		t.Fatalf("expected default emails preserved on partially overridden entry")
	}
	if merged.SendScope.SafetyHQ || !merged.SendScope.RescueTeam {
		t.Fatalf("send scope not overlaid: %+v", merged.SendScope)
	}
	// untouched defaults survive
	if merged.Employer("own") == nil || merged.Employer("b") == nil {
		t.Fatalf("default employers dropped by merge")
	}
}

func TestMergeAppendsUnknownEntriesInOrder(t *testing.T) {
	doc := []byte(`{
		"employers": [
			{"id": "zz-2", "name": "Second extra"},
			{"id": "zz-1", "name": "First extra"}
		]
	}`)

	merged, err := Merge(Defaults(), doc)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	n := len(merged.Employers)
	if n < 2 {
		t.Fatalf("extras missing, have %d employers", n)
	}
	if merged.Employers[n-2].ID != "zz-2" || merged.Employers[n-1].ID != "zz-1" {
		t.Fatalf("extras out of original order: %s, %s", merged.Employers[n-2].ID, merged.Employers[n-1].ID)
	}
}

func TestMergeNewDefaultSymptomSurvivesOldDocument(t *testing.T) {
	// A document exported before a symptom existed must not hide it.
	doc := []byte(`{"symptoms": [{"id": "bleeding_major", "label": "Major bleeding (edited)"}]}`)

	merged, err := Merge(Defaults(), doc)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Symptom("unconscious") == nil {
		t.Fatalf("default symptom missing after merge with partial document")
	}
	sym := merged.Symptom("bleeding_major")
	if sym == nil || sym.Label != "Major bleeding (edited)" {
		t.Fatalf("edited symptom not overlaid: %+v", sym)
	}
	if !sym.RequiresBodyLoc {
		t.Fatalf("expected default requiresBodyLoc preserved on edited symptom")
	}
}

func TestMergeCorruptDocumentFallsBackToDefaults(t *testing.T) {
	merged, err := Merge(Defaults(), []byte(`{not json`))
	if err == nil {
		t.Fatalf("expected parse error reported")
	}
	if len(merged.Symptoms) != len(Defaults().Symptoms) {
		t.Fatalf("expected pristine defaults on corrupt document")
	}
}

func TestDefaultsCoherent(t *testing.T) {
	def := Defaults()

	for _, p := range def.Personnel {
		if p.EmployerID != "" && def.Employer(p.EmployerID) == nil {
			t.Fatalf("person %s references unknown employer %s", p.ID, p.EmployerID)
		}
	}
	for mode, ids := range ModePresets {
		for _, id := range ids {
			if def.Symptom(id) == nil {
				t.Fatalf("mode %s preset references unknown symptom %s", mode, id)
			}
		}
	}
	for _, sym := range def.Symptoms {
		if sym.DefaultAction != models.ActionEmergency && sym.DefaultAction != models.ActionObserve {
			t.Fatalf("symptom %s has invalid default action %q", sym.ID, sym.DefaultAction)
		}
	}
}
