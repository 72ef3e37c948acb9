package flow

import (
	"fmt"
	"strings"

	"github.com/lifeline-app/backend/internal/models"
)

func isWizardStep(sc models.Screen) bool {
	for _, st := range WizardSteps {
		if st == sc {
			return true
		}
	}
	return false
}

// TriageComplete reports whether both triage questions have an answer.
// The Next control on the triage step stays disabled until this holds;
// the quick-share jump to Review is deliberately not gated by it.
func TriageComplete(s *models.SessionState) bool {
	t := s.Wizard.Triage
	return t.Consciousness != "" && t.Breathing != ""
}

// AnswerTriage records one of the two triage questions.
func AnswerTriage(s *models.SessionState, consciousness, breathing models.TriageAnswer) error {
	for _, a := range []models.TriageAnswer{consciousness, breathing} {
		switch a {
		case "", models.AnswerYes, models.AnswerNo, models.AnswerUnknown:
		default:
			return fmt.Errorf("flow: invalid triage answer %q", a)
		}
	}
	if consciousness != "" {
		s.Wizard.Triage.Consciousness = consciousness
	}
	if breathing != "" {
		s.Wizard.Triage.Breathing = breathing
	}
	return nil
}

// GoToStep jumps to any wizard step. The step indicator allows free
// movement, with one gate: leaving Triage forward via Next requires both
// answers. Jumps are validated against the known step list only.
func GoToStep(s *models.SessionState, step models.Screen) error {
	if !isWizardStep(step) {
		return fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
	push(s, step)
	return nil
}

// NextFromTriage is the gated forward transition out of the triage step.
func NextFromTriage(s *models.SessionState) error {
	if !TriageComplete(s) {
		return ErrTriageIncomplete
	}
	push(s, models.ScreenLocation)
	return nil
}

// Location sources overwrite each other: whichever of QR, manual entry,
// map selection, or "unknown" came last wins in full.

// SetLocationManual sets a typed-in location name.
func SetLocationManual(s *models.SessionState, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("flow: empty location name")
	}
	s.Wizard.Location = models.LocationState{
		Source: models.LocationManual,
		Name:   name,
	}
	return nil
}

// SetLocationUnknown marks the location explicitly unknown.
func SetLocationUnknown(s *models.SessionState) {
	s.Wizard.Location = models.LocationState{
		Source:    models.LocationUnknown,
		IsUnknown: true,
	}
}

// SetLocationFromCatalog picks a registered site location by id.
func SetLocationFromCatalog(s *models.SessionState, rec *models.MasterRecord, siteID string) error {
	for i := range rec.SiteLocations {
		if rec.SiteLocations[i].ID == siteID {
			s.Wizard.Location = models.LocationState{
				Source:  models.LocationManual,
				Name:    rec.SiteLocations[i].Name,
				QRToken: rec.SiteLocations[i].QRToken,
			}
			return nil
		}
	}
	return fmt.Errorf("flow: unknown site location %q", siteID)
}

// SetLocationQR applies a scanned location token. A token that matches no
// registered site still sticks, carrying an unregistered marker so the
// report goes out and the gap shows up for admins.
func SetLocationQR(s *models.SessionState, rec *models.MasterRecord, token string) {
	loc := models.LocationState{
		Source:  models.LocationQR,
		QRToken: token,
		Name:    UnregisteredLocation,
	}
	for i := range rec.SiteLocations {
		if rec.SiteLocations[i].QRToken != "" && rec.SiteLocations[i].QRToken == token {
			loc.Name = rec.SiteLocations[i].Name
			break
		}
	}
	s.Wizard.Location = loc
}

// SetLocationFromMap applies a facility-map zone selection.
func SetLocationFromMap(s *models.SessionState, zoneName string) error {
	if strings.TrimSpace(zoneName) == "" {
		return fmt.Errorf("flow: empty zone name")
	}
	s.Wizard.Location = models.LocationState{
		Source: models.LocationMap,
		Name:   zoneName,
	}
	return nil
}

// ToggleAccidentTag adds the tag if absent and removes it if present.
func ToggleAccidentTag(s *models.SessionState, rec *models.MasterRecord, tagID string) error {
	if rec.AccidentTag(tagID) == nil {
		return fmt.Errorf("flow: unknown accident tag %q", tagID)
	}
	tags := s.Wizard.Accident.Tags
	for i, t := range tags {
		if t == tagID {
			s.Wizard.Accident.Tags = append(tags[:i], tags[i+1:]...)
			return nil
		}
	}
	s.Wizard.Accident.Tags = append(tags, tagID)
	return nil
}

// ClearAccidentTags empties the selection ("none of these").
func ClearAccidentTags(s *models.SessionState) {
	s.Wizard.Accident.Tags = nil
}

// SetAccidentNote stores the free-text supplement.
func SetAccidentNote(s *models.SessionState, note string) {
	s.Wizard.Accident.Note = note
}

// SetVictimUnknown marks the victim explicitly unknown, clearing any prior
// identification.
func SetVictimUnknown(s *models.SessionState) {
	s.Wizard.Victim = models.VictimState{IsUnknown: true}
}

// SetVictimPerson resolves the victim to a registered person.
func SetVictimPerson(s *models.SessionState, rec *models.MasterRecord, personID string) error {
	p := rec.Person(personID)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPerson, personID)
	}
	s.Wizard.Victim = models.VictimState{
		PersonID: p.ID,
		QRToken:  p.QRToken,
	}
	return nil
}

// SetVictimName records a free-text victim name when search finds nobody.
func SetVictimName(s *models.SessionState, name string) {
	s.Wizard.Victim = models.VictimState{Name: strings.TrimSpace(name)}
}

// SetVictimQR applies a scanned helmet token. Unmatched tokens keep the
// token with an unregistered marker name, same as locations.
func SetVictimQR(s *models.SessionState, rec *models.MasterRecord, token string) {
	v := models.VictimState{QRToken: token, Name: UnregisteredPerson}
	for i := range rec.Personnel {
		if rec.Personnel[i].QRToken != "" && rec.Personnel[i].QRToken == token {
			v.PersonID = rec.Personnel[i].ID
			v.Name = ""
			break
		}
	}
	s.Wizard.Victim = v
}
