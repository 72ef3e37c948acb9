package compose

import (
	"fmt"
	"strings"

	"github.com/lifeline-app/backend/internal/models"
)

const wizardFooter = "This message was composed by LifeLine and may contain unconfirmed details."

func triageLabel(a models.TriageAnswer) string {
	switch a {
	case models.AnswerYes:
		return "present"
	case models.AnswerNo:
		return "none"
	case models.AnswerUnknown:
		return "unknown"
	default:
		return "(not set)"
	}
}

func locationLabel(loc models.LocationState) string {
	if loc.IsUnknown {
		return "(unknown location)"
	}
	if loc.Name == "" {
		return "(location not set)"
	}
	return loc.Name
}

func victimLabel(v models.VictimState, person *models.Person) string {
	switch {
	case person != nil:
		return person.Name
	case v.Name != "":
		return v.Name
	case v.IsUnknown:
		return "(unknown)"
	default:
		return "(not set)"
	}
}

// ComposeWizard assembles the guided-flow summary draft. Unlike the quick
// flow it ignores the per-symptom templates: the body is a fixed layout of
// sections in a fixed order, with optional lines dropped when empty.
func ComposeWizard(s *models.SessionState, rec *models.MasterRecord) models.Draft {
	w := s.Wizard
	person := rec.Person(w.Victim.PersonID)
	var employer *models.Employer
	if person != nil {
		employer = rec.Employer(person.EmployerID)
	}

	loc := locationLabel(w.Location)
	victim := victimLabel(w.Victim, person)

	var lines []string
	lines = append(lines, fmt.Sprintf("Discovery time: %s", w.StartedAt))
	lines = append(lines, fmt.Sprintf("Consciousness: %s / Breathing: %s",
		triageLabel(w.Triage.Consciousness), triageLabel(w.Triage.Breathing)))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Location: %s", loc))
	if w.Location.QRToken != "" {
		lines = append(lines, fmt.Sprintf("Location QR: %s", w.Location.QRToken))
	}
	lines = append(lines, "")

	var tagLabels []string
	for _, id := range w.Accident.Tags {
		if t := rec.AccidentTag(id); t != nil {
			tagLabels = append(tagLabels, t.Label)
		}
	}
	category := "(not selected)"
	if len(tagLabels) > 0 {
		category = strings.Join(tagLabels, " / ")
	}
	lines = append(lines, fmt.Sprintf("Accident category: %s", category))
	if note := strings.TrimSpace(w.Accident.Note); note != "" {
		lines = append(lines, fmt.Sprintf("Note: %s", note))
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Victim: %s", victim))
	if employer != nil {
		lines = append(lines, fmt.Sprintf("Employer: %s", employer.Name))
	}
	if person != nil {
		lines = append(lines, fmt.Sprintf("Person ID: %s", person.ID))
	}
	if w.Victim.QRToken != "" {
		lines = append(lines, fmt.Sprintf("Helmet QR: %s", w.Victim.QRToken))
	}
	lines = append(lines, "", "--", wizardFooter)

	return models.Draft{
		Recipients: wizardRecipients(employer, rec),
		Subject:    fmt.Sprintf("[LifeLine] Emergency %s / %s", loc, victim),
		Body:       strings.Join(lines, "\n"),
	}
}

// wizardRecipients ignores symptom group sets: the guided flow always offers
// every enabled global contact, plus the victim's employer addresses.
func wizardRecipients(employer *models.Employer, rec *models.MasterRecord) []string {
	var out []string
	if rec.SendScope.SafetyHQ && rec.GlobalContacts.SafetyHQ != "" {
		out = append(out, rec.GlobalContacts.SafetyHQ)
	}
	if rec.SendScope.RescueTeam && rec.GlobalContacts.RescueTeam != "" {
		out = append(out, rec.GlobalContacts.RescueTeam)
	}
	if rec.SendScope.AmbulanceCenter && rec.GlobalContacts.AmbulanceCenter != "" {
		out = append(out, rec.GlobalContacts.AmbulanceCenter)
	}
	if rec.SendScope.CompanyEmails && employer != nil {
		out = append(out, employer.Emails...)
	}
	return dedupe(out)
}
