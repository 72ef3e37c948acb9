package compose

import (
	"strings"
	"testing"

	"github.com/lifeline-app/backend/internal/master"
	"github.com/lifeline-app/backend/internal/models"
)

// Unconscious victim at a manually entered dock, cause fall, identity
// unknown: the review body must carry the fixed sections in fixed order.
func TestComposeWizardFixedLayout(t *testing.T) {
	rec := master.Defaults()
	s := &models.SessionState{
		Wizard: models.WizardState{
			StartedAt: "2025-03-14 09:30",
			Triage: models.TriageState{
				Consciousness: models.AnswerNo,
				Breathing:     models.AnswerUnknown,
			},
			Location: models.LocationState{
				Source: models.LocationManual,
				Name:   "Dock 3",
			},
			Accident: models.AccidentState{Tags: []string{"fall"}},
			Victim:   models.VictimState{IsUnknown: true},
		},
	}

	d := ComposeWizard(s, &rec)

	wantLines := []string{
		"Discovery time: 2025-03-14 09:30",
		"Consciousness: none / Breathing: unknown",
		"Location: Dock 3",
		"Accident category: Fall",
		"Victim: (unknown)",
	}
	last := -1
	for _, want := range wantLines {
		idx := strings.Index(d.Body, want)
		if idx < 0 {
			t.Fatalf("body missing line %q:\n%s", want, d.Body)
		}
		if idx < last {
			t.Fatalf("line %q out of order:\n%s", want, d.Body)
		}
		last = idx
	}
	if !strings.Contains(d.Subject, "Dock 3") || !strings.Contains(d.Subject, "(unknown)") {
		t.Fatalf("subject should carry location and victim: %q", d.Subject)
	}
}

func TestComposeWizardResolvedVictimCarriesEmployer(t *testing.T) {
	rec := master.Defaults()
	s := &models.SessionState{
		Wizard: models.WizardState{
			StartedAt: "2025-03-14 09:30",
			Victim:    models.VictimState{PersonID: "staff-003"},
		},
	}

	d := ComposeWizard(s, &rec)
	person := rec.Person("staff-003")
	employer := rec.Employer(person.EmployerID)

	if !strings.Contains(d.Body, "Victim: "+person.Name) {
		t.Fatalf("body missing resolved victim name:\n%s", d.Body)
	}
	if !strings.Contains(d.Body, "Employer: "+employer.Name) {
		t.Fatalf("body missing employer line:\n%s", d.Body)
	}
	if !strings.Contains(d.Body, "Person ID: staff-003") {
		t.Fatalf("body missing person id line:\n%s", d.Body)
	}
	// employer addresses join the recipients under the company scope
	found := false
	for _, r := range d.Recipients {
		if r == employer.Emails[0] {
			found = true
		}
	}
	if !found {
		t.Fatalf("employer address missing from recipients: %v", d.Recipients)
	}
}

func TestComposeWizardOptionalLinesDropped(t *testing.T) {
	rec := master.Defaults()
	s := &models.SessionState{
		Wizard: models.WizardState{
			StartedAt: "2025-03-14 09:30",
			Victim:    models.VictimState{IsUnknown: true},
		},
	}
	d := ComposeWizard(s, &rec)
	for _, absent := range []string{"Location QR:", "Note:", "Helmet QR:", "Employer:", "Person ID:"} {
		if strings.Contains(d.Body, absent) {
			t.Fatalf("optional line %q should be absent:\n%s", absent, d.Body)
		}
	}
	if !strings.Contains(d.Body, "Accident category: (not selected)") {
		t.Fatalf("empty tag set should render placeholder:\n%s", d.Body)
	}
}
