// Package flow implements the incident-reporting state machines: the quick
// symptom flow, the guided emergency wizard, and the screen stack both share.
// Transition functions mutate a session in place; persistence is the
// Service's job so the rules stay testable without a store.
package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/lifeline-app/backend/internal/compose"
	"github.com/lifeline-app/backend/internal/models"
)

var (
	ErrUnknownSymptom      = errors.New("flow: unknown symptom")
	ErrUnknownEmployer     = errors.New("flow: unknown employer")
	ErrUnknownPerson       = errors.New("flow: unknown person")
	ErrUnknownBodyLocation = errors.New("flow: unknown body location")
	ErrUnknownStep         = errors.New("flow: unknown wizard step")
	ErrTriageIncomplete    = errors.New("flow: triage answers incomplete")
	ErrInvalidAction       = errors.New("flow: invalid severity action")
)

// WizardSteps is the fixed linear order of the guided flow. Any step is
// directly reachable from the step indicator once the wizard has started.
var WizardSteps = []models.Screen{
	models.ScreenTriage,
	models.ScreenLocation,
	models.ScreenAccident,
	models.ScreenVictim,
	models.ScreenReview,
}

// Label shown when a scanned token matches nothing in the master record.
// The report still goes out; admins register the token later.
const (
	UnregisteredLocation = "Unregistered location (register it in admin)"
	UnregisteredPerson   = "Unregistered (register the badge QR in admin)"
)

// NewSession returns a fresh session parked on the home screen.
func NewSession(id string, now time.Time) *models.SessionState {
	return &models.SessionState{
		ID:        id,
		Mode:      models.ModeEmergency,
		Stack:     []models.Screen{models.ScreenHome},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentScreen returns the top of the screen stack.
func CurrentScreen(s *models.SessionState) models.Screen {
	if len(s.Stack) == 0 {
		return models.ScreenHome
	}
	return s.Stack[len(s.Stack)-1]
}

func push(s *models.SessionState, sc models.Screen) {
	if CurrentScreen(s) != sc {
		s.Stack = append(s.Stack, sc)
	}
}

// Back pops one screen. At the bottom of the stack it stays home rather
// than failing, matching the hardware back button expectation.
func Back(s *models.SessionState) {
	if len(s.Stack) <= 1 {
		s.Stack = []models.Screen{models.ScreenHome}
		return
	}
	s.Stack = s.Stack[:len(s.Stack)-1]
}

// Restart drops every answer and returns to home. The session id survives
// so the persisted slot is overwritten, not orphaned.
func Restart(s *models.SessionState) {
	mode := s.Mode
	*s = models.SessionState{
		ID:        s.ID,
		Mode:      mode,
		Stack:     []models.Screen{models.ScreenHome},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Resume re-enters a restored session at home while keeping every answer.
// A reload never lands on a stale deep screen; the report continues from
// the top with its selections intact.
func Resume(s *models.SessionState) {
	s.Stack = []models.Screen{models.ScreenHome}
}

func resetAnswers(s *models.SessionState) {
	s.SymptomID = ""
	s.EmployerID = ""
	s.PersonID = ""
	s.BodyLocationID = ""
	s.Note = ""
	s.Action = ""
	s.Wizard = models.WizardState{}
}

// StartQuick enters the symptom-pick flow in the given mode. The mode
// filters which symptom preset the UI offers but never restricts selection.
func StartQuick(s *models.SessionState, mode models.Mode) {
	resetAnswers(s)
	s.Mode = mode
	s.Stack = []models.Screen{models.ScreenHome}
	push(s, models.ScreenSymptomPick)
}

// StartWizard enters the guided emergency flow and stamps the discovery
// time, which the review screen reports verbatim.
func StartWizard(s *models.SessionState, now time.Time) {
	resetAnswers(s)
	s.Mode = models.ModeEmergency
	s.Wizard.StartedAt = now.Format(compose.TimeLayout)
	s.Stack = []models.Screen{models.ScreenHome}
	push(s, models.ScreenTriage)
}

// SelectSymptom records the symptom and clears every downstream answer so a
// re-entry never leaks a stale person or body part into the new report.
// Symptoms needing a body location branch there before the employer pick.
func SelectSymptom(s *models.SessionState, rec *models.MasterRecord, symptomID string) error {
	sym := rec.Symptom(symptomID)
	if sym == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSymptom, symptomID)
	}
	s.SymptomID = sym.ID
	s.EmployerID = ""
	s.PersonID = ""
	s.BodyLocationID = ""
	s.Action = ""
	if sym.RequiresBodyLoc {
		push(s, models.ScreenBodyLocation)
	} else {
		push(s, models.ScreenEmployerPick)
	}
	return nil
}

// SelectBodyLocation records the tapped body part. Navigation waits for
// ConfirmBodyLocation so the user can change their mind on the figure.
func SelectBodyLocation(s *models.SessionState, rec *models.MasterRecord, locationID string) error {
	if rec.BodyLocation(locationID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownBodyLocation, locationID)
	}
	s.BodyLocationID = locationID
	return nil
}

// ConfirmBodyLocation advances past the body screen. When employer and
// person were already chosen (the late body detour) it jumps straight to
// the terminal screen instead of repeating the picks.
func ConfirmBodyLocation(s *models.SessionState, rec *models.MasterRecord) error {
	if s.BodyLocationID == "" {
		return fmt.Errorf("%w: none selected", ErrUnknownBodyLocation)
	}
	if s.EmployerID != "" && s.PersonID != "" {
		finishQuick(s, rec)
		return nil
	}
	push(s, models.ScreenEmployerPick)
	return nil
}

// SelectEmployer records the employer and resets the person, then moves to
// the person pick.
func SelectEmployer(s *models.SessionState, rec *models.MasterRecord, employerID string) error {
	if rec.Employer(employerID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownEmployer, employerID)
	}
	s.EmployerID = employerID
	s.PersonID = ""
	push(s, models.ScreenPersonPick)
	return nil
}

// SelectPerson records the person and moves to the terminal screen. If the
// symptom needed a body location that was never picked, the body screen is
// interposed first; ConfirmBodyLocation then resumes the shortcut.
func SelectPerson(s *models.SessionState, rec *models.MasterRecord, personID string) error {
	if rec.Person(personID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPerson, personID)
	}
	s.PersonID = personID
	if sym := rec.Symptom(s.SymptomID); sym != nil && sym.RequiresBodyLoc && s.BodyLocationID == "" {
		push(s, models.ScreenBodyLocation)
		return nil
	}
	finishQuick(s, rec)
	return nil
}

func finishQuick(s *models.SessionState, rec *models.MasterRecord) {
	if s.Mode == models.ModeEmergency {
		s.Action = models.ActionEmergency
		push(s, models.ScreenEmergencyCall)
		return
	}
	if s.Action == "" {
		if sym := rec.Symptom(s.SymptomID); sym != nil && sym.DefaultAction != "" {
			s.Action = sym.DefaultAction
		} else {
			s.Action = models.ActionObserve
		}
	}
	push(s, models.ScreenPreview)
}

// SetAction switches the severity choice on the preview screen, which swaps
// the template variant and recipient group set on the next compose.
func SetAction(s *models.SessionState, action models.SeverityAction) error {
	if action != models.ActionEmergency && action != models.ActionObserve {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	s.Action = action
	return nil
}

// SetNote records the optional free-text detail for the quick flow.
func SetNote(s *models.SessionState, note string) {
	s.Note = note
}
