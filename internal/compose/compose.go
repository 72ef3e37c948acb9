// Package compose turns session state plus the master record into outbound
// notification drafts. Everything here is a pure function of its inputs so
// previews never drift from what eventually gets handed to the mail client.
package compose

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/lifeline-app/backend/internal/models"
)

// TimeLayout is the wall-clock format used in subjects and bodies.
const TimeLayout = "2006-01-02 15:04"

const emptyDetail = "(no additional notes)"

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Interpolate substitutes {token} placeholders from vars. Unknown tokens
// become the empty string rather than an error so a stale template still
// produces a usable message.
func Interpolate(tpl string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		key := m[1 : len(m)-1]
		return vars[key]
	})
}

// Recipients resolves the address list for a symptom and severity action.
// Group tokens pass through the send-scope toggles and the global contact
// book; the employer's own addresses join in when the companyEmails scope is
// on. The result keeps first-seen order with duplicates removed, and may be
// empty when nothing is configured.
func Recipients(sym *models.Symptom, employer *models.Employer, action models.SeverityAction, rec *models.MasterRecord) []string {
	var groups []models.RecipientGroup
	if sym != nil {
		if action == models.ActionEmergency {
			groups = sym.EmergencyGroups
		} else {
			groups = sym.ObserveGroups
		}
	}

	out := make([]string, 0, len(groups)+4)
	for _, g := range groups {
		switch g {
		case models.GroupSafetyHQ:
			if rec.SendScope.SafetyHQ && rec.GlobalContacts.SafetyHQ != "" {
				out = append(out, rec.GlobalContacts.SafetyHQ)
			}
		case models.GroupRescueTeam:
			if rec.SendScope.RescueTeam && rec.GlobalContacts.RescueTeam != "" {
				out = append(out, rec.GlobalContacts.RescueTeam)
			}
		case models.GroupAmbulanceCenter:
			if rec.SendScope.AmbulanceCenter && rec.GlobalContacts.AmbulanceCenter != "" {
				out = append(out, rec.GlobalContacts.AmbulanceCenter)
			}
		}
		// unknown group tokens are skipped, not errors
	}
	if rec.SendScope.CompanyEmails && employer != nil {
		out = append(out, employer.Emails...)
	}
	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// Compose builds the quick-flow draft for a session using the selected
// symptom's templates. now is injected so previews are reproducible in tests.
func Compose(s *models.SessionState, rec *models.MasterRecord, action models.SeverityAction, now time.Time) models.Draft {
	sym := rec.Symptom(s.SymptomID)
	employer := rec.Employer(s.EmployerID)
	person := rec.Person(s.PersonID)
	part := rec.BodyLocation(s.BodyLocationID)

	detail := strings.TrimSpace(s.Note)
	if detail == "" {
		detail = emptyDetail
	}
	vars := map[string]string{
		"company": "",
		"person":  "",
		"time":    now.Format(TimeLayout),
		"part":    "",
		"detail":  detail,
	}
	if employer != nil {
		vars["company"] = employer.Name
	}
	if person != nil {
		vars["person"] = person.Name
	}
	if part != nil {
		vars["part"] = part.Label
	}

	subjectTpl := "[LifeLine] Incident report"
	bodyTpl := "{person} {company} {time}"
	if sym != nil {
		if sym.SubjectTemplate != "" {
			subjectTpl = sym.SubjectTemplate
		}
		tpl := sym.BodyTplObserve
		if action == models.ActionEmergency {
			tpl = sym.BodyTplEmergency
		}
		if tpl != "" {
			bodyTpl = tpl
		}
	}

	return models.Draft{
		Recipients: Recipients(sym, employer, action, rec),
		Subject:    Interpolate(subjectTpl, vars),
		Body:       Interpolate(bodyTpl, vars),
	}
}

// AdviceText returns the on-screen guidance paired with the chosen action.
func AdviceText(sym *models.Symptom, action models.SeverityAction) string {
	if sym == nil {
		return ""
	}
	if action == models.ActionEmergency {
		return sym.AdviceTextEmergency
	}
	return sym.AdviceTextObserve
}

// MailtoURL builds the mail-client handoff link. Subject and body travel as
// URL-encoded query parameters against the comma-joined recipient list.
func MailtoURL(d models.Draft) string {
	qs := url.Values{}
	qs.Set("subject", d.Subject)
	qs.Set("body", d.Body)
	return fmt.Sprintf("mailto:%s?%s", strings.Join(d.Recipients, ","), qs.Encode())
}

// CopyBlock renders the draft as the fixed To / Subject / Body text block
// used by copy-to-clipboard.
func CopyBlock(d models.Draft) string {
	return fmt.Sprintf("To: %s\nSubject: %s\nBody:\n%s",
		strings.Join(d.Recipients, ", "), d.Subject, d.Body)
}
