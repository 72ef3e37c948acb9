package master

import (
	"fmt"

	"github.com/lifeline-app/backend/internal/models"
)

const SchemaVersion = 1

// Defaults returns the built-in master record. It defines canonical ordering
// and identifiers; persisted edits are overlaid onto it entry by entry.
func Defaults() models.MasterRecord {
	return models.MasterRecord{
		Version: SchemaVersion,
		GlobalContacts: models.GlobalContacts{
			SafetyHQ:        "safety@example.com",
			RescueTeam:      "rescue@example.com",
			AmbulanceCenter: "dispatch@example.com",
		},
		SendScope: models.SendScope{
			SafetyHQ:        true,
			RescueTeam:      false,
			AmbulanceCenter: false,
			CompanyEmails:   true,
		},
		Employers: []models.Employer{
			{ID: "own", Name: "Own company", Emails: []string{"aa@example.com", "bb@example.com"}},
			{ID: "a", Name: "A Shipbuilding", Emails: []string{"cc@example.com", "dd@example.com"}},
			{ID: "b", Name: "B Corporation", Emails: []string{"ee@example.com"}},
		},
		Personnel: []models.Person{
			{ID: "staff-001", EmployerID: "own", Name: "Ichiro Sato", Reading: "sato ichiro"},
			{ID: "staff-002", EmployerID: "own", Name: "Hanako Takahashi", Reading: "takahashi hanako"},
			{ID: "staff-003", EmployerID: "a", Name: "Taro Yamada", Reading: "yamada taro"},
			{ID: "staff-004", EmployerID: "a", Name: "Jiro Ito", Reading: "ito jiro"},
			{ID: "staff-005", EmployerID: "b", Name: "Saburo Suzuki", Reading: "suzuki saburo"},
		},
		Symptoms:      defaultSymptoms(),
		BodyLocations: defaultBodyLocations(),
		SiteLocations: defaultSiteLocations(),
		AccidentTags: []models.AccidentTag{
			{ID: "bleeding_major", Label: "Major bleeding"},
			{ID: "fall", Label: "Fall"},
			{ID: "electric", Label: "Electric shock"},
			{ID: "crush", Label: "Caught in machinery"},
			{ID: "burn", Label: "Burn"},
			{ID: "heatstroke", Label: "Heatstroke"},
			{ID: "other", Label: "Other"},
		},
	}
}

// ModePresets lists which symptoms show on the home grid per reporting mode.
// Symptoms missing from the master record are skipped, not errors.
var ModePresets = map[models.Mode][]string{
	models.ModeEmergency: {"unconscious", "bleeding_major", "fall", "electric", "pinched", "other"},
	models.ModeUnsure:    {"bleeding", "dizzy", "pain", "vomit", "cant_stand", "other"},
}

func defaultSymptoms() []models.Symptom {
	all := []models.RecipientGroup{models.GroupSafetyHQ, models.GroupRescueTeam, models.GroupAmbulanceCenter}
	safetyRescue := []models.RecipientGroup{models.GroupSafetyHQ, models.GroupRescueTeam}
	safetyOnly := []models.RecipientGroup{models.GroupSafetyHQ}

	return []models.Symptom{
		{
			ID:                  "unconscious",
			Label:               "Unconscious",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionEmergency,
			EmergencyGroups:     all,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Unconscious",
			BodyTplEmergency:    "{person}: unconscious, emergency rescue needed, stretcher requested\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: suspected loss of consciousness, please check immediately\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "If there is no response, check breathing and pulse and call an ambulance immediately. Start CPR if you are able to.",
			AdviceTextObserve:   "An unresponsive person is likely a severe emergency. Do not hesitate to switch to an emergency request.",
		},
		{
			ID:                  "bleeding_major",
			Label:               "Major bleeding",
			RequiresBodyLoc:     true,
			DefaultAction:       models.ActionEmergency,
			EmergencyGroups:     all,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Major bleeding",
			BodyTplEmergency:    "{person}: major bleeding ({part}), emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: bleeding ({part}), observing while sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Apply pressure to stop the bleeding and keep the wound above heart level if possible. Call an ambulance without hesitation.",
			AdviceTextObserve:   "If bleeding continues or is heavy, an emergency request is needed. Keep applying pressure.",
		},
		{
			ID:                  "bleeding",
			Label:               "Bleeding",
			RequiresBodyLoc:     true,
			DefaultAction:       models.ActionObserve,
			EmergencyGroups:     all,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Bleeding",
			BodyTplEmergency:    "{person}: bleeding ({part}), emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: bleeding ({part}), observing while sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "If the bleeding does not stop, is heavy, or the person becomes drowsy, request emergency help without hesitation.",
			AdviceTextObserve:   "Apply pressure to the wound. Switch to an emergency request if it does not improve.",
		},
		{
			ID:                  "fall",
			Label:               "Fall from height",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionEmergency,
			EmergencyGroups:     all,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Fall from height",
			BodyTplEmergency:    "{person}: fall from height, emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: suspected fall from height, sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Keep the head and torso still, and call an ambulance if needed.",
			AdviceTextObserve:   "Switch to an emergency request if there is pain, numbness, or altered consciousness.",
		},
		{
			ID:                  "electric",
			Label:               "Electric shock",
			Hint:                "Electrical accident",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionEmergency,
			EmergencyGroups:     all,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Electric shock",
			BodyTplEmergency:    "{person}: electric shock, emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: suspected electric shock, sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "After cutting the power, check consciousness and breathing. Call an ambulance if anything is abnormal.",
			AdviceTextObserve:   "Symptoms can appear late even in mild cases. Always notify the supervisor and the safety office.",
		},
		{
			ID:                  "pinched",
			Label:               "Caught in machinery",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionEmergency,
			EmergencyGroups:     safetyRescue,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Caught in machinery",
			BodyTplEmergency:    "{person}: caught in machinery, emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: suspected caught in machinery, sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Free the person while watching for secondary accidents. Call an ambulance if there is bleeding or impaired consciousness.",
			AdviceTextObserve:   "Switch to an emergency request if pain or swelling is severe.",
		},
		{
			ID:                  "pain",
			Label:               "Pain",
			RequiresBodyLoc:     true,
			DefaultAction:       models.ActionObserve,
			EmergencyGroups:     safetyRescue,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Pain",
			BodyTplEmergency:    "{person}: pain in {part}, emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: pain in {part}, keeping under observation\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Choose an emergency request if there is severe pain, deformity, numbness, or bleeding.",
			AdviceTextObserve:   "Keep the affected area at rest. Switch to an emergency request if symptoms do not improve or worsen.",
		},
		{
			ID:                  "dizzy",
			Label:               "Dizziness",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionObserve,
			EmergencyGroups:     safetyOnly,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Dizziness",
			BodyTplEmergency:    "{person}: dizziness, emergency response needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: dizziness, observing while sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Request emergency help if there is reduced consciousness, chest pain, or trouble breathing.",
			AdviceTextObserve:   "Seat the person somewhere safe, do not force them to stand, and switch to an emergency request if it does not improve.",
		},
		{
			ID:                  "vomit",
			Label:               "Vomiting",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionObserve,
			EmergencyGroups:     safetyOnly,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Vomiting",
			BodyTplEmergency:    "{person}: vomiting, emergency response needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: vomiting, observing while sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Request emergency help for impaired consciousness, vomiting blood, or severe abdominal pain.",
			AdviceTextObserve:   "Lay the person on their side, watch for aspiration, and switch to an emergency request if it does not improve.",
		},
		{
			ID:                  "cant_stand",
			Label:               "Unable to stand",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionObserve,
			EmergencyGroups:     safetyOnly,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Unable to stand",
			BodyTplEmergency:    "{person}: unable to stand, emergency response needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: unable to stand, observing while sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "Request emergency help if the person is unconscious, struggling to breathe, or in severe pain.",
			AdviceTextObserve:   "Keep the person still, and switch to an emergency request if it does not improve.",
		},
		{
			ID:                  "other",
			Label:               "Other",
			RequiresBodyLoc:     false,
			DefaultAction:       models.ActionObserve,
			EmergencyGroups:     safetyRescue,
			ObserveGroups:       safetyOnly,
			SubjectTemplate:     "[LifeLine] {company} {person} - Other",
			BodyTplEmergency:    "{person}: other incident, emergency rescue needed\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			BodyTplObserve:      "{person}: other incident, sharing status\nEmployer: {company}\nOccurred at: {time}\n\nDetails: {detail}",
			AdviceTextEmergency: "If the situation looks urgent, request emergency help without hesitation.",
			AdviceTextObserve:   "Organize and share the situation, and switch to an emergency request as needed.",
		},
	}
}

func defaultBodyLocations() []models.BodyLocation {
	return []models.BodyLocation{
		{ID: "head", Label: "Head"},
		{ID: "neck", Label: "Neck"},
		{ID: "torso", Label: "Chest/Abdomen"},
		{ID: "leftArm", Label: "Left arm"},
		{ID: "rightArm", Label: "Right arm"},
		{ID: "leftHand", Label: "Left hand"},
		{ID: "rightHand", Label: "Right hand"},
		{ID: "hips", Label: "Lower back"},
		{ID: "leftLeg", Label: "Left leg"},
		{ID: "rightLeg", Label: "Right leg"},
		{ID: "leftFoot", Label: "Left foot"},
		{ID: "rightFoot", Label: "Right foot"},
	}
}

func defaultSiteLocations() []models.SiteLocation {
	names := []string{
		"North Platen 2",
		"Piece Cutting Area",
		"Tool Storage",
		"Facility Workshop",
		"Old Gas Center Factory",
		"Building B",
		"North Platen 1",
		"Building A",
		"Dock",
		"Ship Under Construction",
		"Sub Platen",
		"Sub Factory",
		"Office",
		"Cafeteria & Subcontractor House",
		"Block Yard",
		"Steel & Sub-material Yard",
		"Bending Platen",
		"Pipe Yard",
		"Outfitting Quay",
		"South Platen 1",
		"70t Jib Crane",
		"Building C",
		"Outfitting Storage",
		"Scrap Yard",
		"South Platen 2",
		"South Platen 3",
		"Processing Shop",
		"Pipe Factory",
		"Electrical & Compressor Room",
	}
	out := make([]models.SiteLocation, 0, len(names))
	for i, n := range names {
		out = append(out, models.SiteLocation{ID: fmt.Sprintf("loc-%02d", i+1), Name: n})
	}
	return out
}
