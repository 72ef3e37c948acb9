package models

import "time"

type Mode string

const (
	ModeEmergency Mode = "emergency"
	ModeUnsure    Mode = "unsure"
)

type SeverityAction string

const (
	ActionEmergency SeverityAction = "emergency"
	ActionObserve   SeverityAction = "observe"
)

type RecipientGroup string

const (
	GroupSafetyHQ        RecipientGroup = "safetyHQ"
	GroupRescueTeam      RecipientGroup = "rescueTeam"
	GroupAmbulanceCenter RecipientGroup = "ambulanceCenter"
)

type TriageAnswer string

const (
	AnswerYes     TriageAnswer = "yes"
	AnswerNo      TriageAnswer = "no"
	AnswerUnknown TriageAnswer = "unknown"
)

type LocationSource string

const (
	LocationQR      LocationSource = "qr"
	LocationManual  LocationSource = "manual"
	LocationMap     LocationSource = "map"
	LocationUnknown LocationSource = "unknown"
)

type Employer struct {
	ID     string   `json:"id" validate:"required"`
	Name   string   `json:"name"`
	Emails []string `json:"emails" validate:"dive,email"`
}

type Person struct {
	ID         string `json:"id"`
	EmployerID string `json:"employer_id"`
	Name       string `json:"name"`
	Reading    string `json:"reading"`
	QRToken    string `json:"qr_token,omitempty"`
}

type Symptom struct {
	ID                  string           `json:"id"`
	Label               string           `json:"label"`
	Hint                string           `json:"hint,omitempty"`
	RequiresBodyLoc     bool             `json:"requires_body_location"`
	DefaultAction       SeverityAction   `json:"default_action"`
	EmergencyGroups     []RecipientGroup `json:"emergency_groups"`
	ObserveGroups       []RecipientGroup `json:"observe_groups"`
	SubjectTemplate     string           `json:"subject_template"`
	BodyTplEmergency    string           `json:"body_template_emergency"`
	BodyTplObserve      string           `json:"body_template_observe"`
	AdviceTextEmergency string           `json:"advice_text_emergency"`
	AdviceTextObserve   string           `json:"advice_text_observe"`
}

type BodyLocation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type SiteLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	QRToken string `json:"qr_token,omitempty"`
}

type AccidentTag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GlobalContacts holds the fixed notification addresses. Empty entries are
// allowed; a blank address just drops that recipient group.
type GlobalContacts struct {
	SafetyHQ        string `json:"safety_hq" validate:"omitempty,email"`
	RescueTeam      string `json:"rescue_team" validate:"omitempty,email"`
	AmbulanceCenter string `json:"ambulance_center" validate:"omitempty,email"`
}

type SendScope struct {
	SafetyHQ        bool `json:"safety_hq"`
	RescueTeam      bool `json:"rescue_team"`
	AmbulanceCenter bool `json:"ambulance_center"`
	CompanyEmails   bool `json:"company_emails"`
}

// MasterRecord is the editable reference dataset. It is persisted as a single
// JSON document and merged against built-in defaults on load, so default
// entries added in later releases show up without discarding admin edits.
type MasterRecord struct {
	Version        int            `json:"version"`
	PassphraseHash string         `json:"passphrase_hash"`
	GlobalContacts GlobalContacts `json:"global_contacts"`
	SendScope      SendScope      `json:"send_scope"`
	Employers      []Employer     `json:"employers"`
	Personnel      []Person       `json:"personnel"`
	Symptoms       []Symptom      `json:"symptoms"`
	BodyLocations  []BodyLocation `json:"body_locations"`
	SiteLocations  []SiteLocation `json:"site_locations"`
	AccidentTags   []AccidentTag  `json:"accident_tags"`
}

func (m *MasterRecord) Employer(id string) *Employer {
	for i := range m.Employers {
		if m.Employers[i].ID == id {
			return &m.Employers[i]
		}
	}
	return nil
}

func (m *MasterRecord) Person(id string) *Person {
	for i := range m.Personnel {
		if m.Personnel[i].ID == id {
			return &m.Personnel[i]
		}
	}
	return nil
}

func (m *MasterRecord) Symptom(id string) *Symptom {
	for i := range m.Symptoms {
		if m.Symptoms[i].ID == id {
			return &m.Symptoms[i]
		}
	}
	return nil
}

func (m *MasterRecord) BodyLocation(id string) *BodyLocation {
	for i := range m.BodyLocations {
		if m.BodyLocations[i].ID == id {
			return &m.BodyLocations[i]
		}
	}
	return nil
}

func (m *MasterRecord) AccidentTag(id string) *AccidentTag {
	for i := range m.AccidentTags {
		if m.AccidentTags[i].ID == id {
			return &m.AccidentTags[i]
		}
	}
	return nil
}

// Screen identifies one view of the reporting UI. The session keeps an
// explicit stack of screens so Back always returns to the preceding one.
type Screen string

const (
	ScreenHome          Screen = "home"
	ScreenSymptomPick   Screen = "symptom_pick"
	ScreenBodyLocation  Screen = "body_location_pick"
	ScreenEmployerPick  Screen = "employer_pick"
	ScreenPersonPick    Screen = "person_pick"
	ScreenPreview       Screen = "preview"
	ScreenEmergencyCall Screen = "emergency_call"
	ScreenTriage        Screen = "triage"
	ScreenLocation      Screen = "location"
	ScreenAccident      Screen = "accident"
	ScreenVictim        Screen = "victim"
	ScreenReview        Screen = "review"
)

type TriageState struct {
	Consciousness TriageAnswer `json:"consciousness,omitempty"`
	Breathing     TriageAnswer `json:"breathing,omitempty"`
}

type LocationState struct {
	Source    LocationSource `json:"source,omitempty"`
	Name      string         `json:"name,omitempty"`
	QRToken   string         `json:"qr_token,omitempty"`
	IsUnknown bool           `json:"is_unknown"`
}

type AccidentState struct {
	Tags []string `json:"tags,omitempty"`
	Note string   `json:"note,omitempty"`
}

type VictimState struct {
	PersonID  string `json:"person_id,omitempty"`
	Name      string `json:"name,omitempty"`
	QRToken   string `json:"qr_token,omitempty"`
	IsUnknown bool   `json:"is_unknown"`
}

// WizardState holds the guided emergency flow answers.
type WizardState struct {
	StartedAt string        `json:"started_at"`
	Triage    TriageState   `json:"triage"`
	Location  LocationState `json:"location"`
	Accident  AccidentState `json:"accident"`
	Victim    VictimState   `json:"victim"`
}

// SessionState is the live in-progress report. It is persisted after every
// mutation so a reload resumes with all prior answers intact.
type SessionState struct {
	ID             string         `json:"id"`
	Mode           Mode           `json:"mode"`
	SymptomID      string         `json:"symptom_id,omitempty"`
	EmployerID     string         `json:"employer_id,omitempty"`
	PersonID       string         `json:"person_id,omitempty"`
	BodyLocationID string         `json:"body_location_id,omitempty"`
	Note           string         `json:"note,omitempty"`
	Action         SeverityAction `json:"action,omitempty"`
	Wizard         WizardState    `json:"wizard"`
	Stack          []Screen       `json:"stack"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Draft is a composed notification: an ordered de-duplicated recipient list
// plus subject and body for the external mail-client handoff.
type Draft struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
}
