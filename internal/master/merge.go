package master

import (
	"github.com/goccy/go-json"

	"github.com/lifeline-app/backend/internal/models"
)

// persistedDoc keeps collections as raw JSON so each entry can be overlaid
// onto its default field by field: keys absent from the persisted entry keep
// the default value instead of being zeroed.
type persistedDoc struct {
	Version        *int              `json:"version"`
	PassphraseHash *string           `json:"passphrase_hash"`
	GlobalContacts json.RawMessage   `json:"global_contacts"`
	SendScope      json.RawMessage   `json:"send_scope"`
	Employers      []json.RawMessage `json:"employers"`
	Personnel      []json.RawMessage `json:"personnel"`
	Symptoms       []json.RawMessage `json:"symptoms"`
	BodyLocations  []json.RawMessage `json:"body_locations"`
	SiteLocations  []json.RawMessage `json:"site_locations"`
	AccidentTags   []json.RawMessage `json:"accident_tags"`
}

// Merge overlays a persisted master document onto the built-in defaults.
// Defaults define canonical ordering; persisted entries sharing a default id
// override that default's fields, and entries with unknown ids are appended
// after all default-ordered entries in their original order.
func Merge(def models.MasterRecord, raw []byte) (models.MasterRecord, error) {
	var doc persistedDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return def, err
	}

	out := def
	if doc.Version != nil {
		out.Version = *doc.Version
	}
	if doc.PassphraseHash != nil {
		out.PassphraseHash = *doc.PassphraseHash
	}
	overlayInto(&out.GlobalContacts, doc.GlobalContacts)
	overlayInto(&out.SendScope, doc.SendScope)

	out.Employers = mergeByID(def.Employers, doc.Employers, func(e models.Employer) string { return e.ID })
	out.Personnel = mergeByID(def.Personnel, doc.Personnel, func(p models.Person) string { return p.ID })
	out.Symptoms = mergeByID(def.Symptoms, doc.Symptoms, func(s models.Symptom) string { return s.ID })
	out.BodyLocations = mergeByID(def.BodyLocations, doc.BodyLocations, func(b models.BodyLocation) string { return b.ID })
	out.SiteLocations = mergeByID(def.SiteLocations, doc.SiteLocations, func(l models.SiteLocation) string { return l.ID })
	out.AccidentTags = mergeByID(def.AccidentTags, doc.AccidentTags, func(t models.AccidentTag) string { return t.ID })
	return out, nil
}

// overlayInto unmarshals raw directly over dst, so only keys present in raw
// replace dst's current values.
func overlayInto(dst any, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	// Unmarshal errors leave dst partially default, which is the wanted
	// degrade-to-defaults behavior for corrupt sub-documents.
	_ = json.Unmarshal(raw, dst)
}

func mergeByID[T any](defaults []T, persisted []json.RawMessage, idOf func(T) string) []T {
	merged := make(map[string]T, len(defaults))
	for _, d := range defaults {
		merged[idOf(d)] = d
	}

	var extraOrder []string
	seenExtra := make(map[string]bool)
	for _, raw := range persisted {
		var probe struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil || probe.ID == "" {
			continue
		}
		base, known := merged[probe.ID]
		if err := json.Unmarshal(raw, &base); err != nil {
			continue
		}
		if !known && !seenExtra[probe.ID] {
			seenExtra[probe.ID] = true
			extraOrder = append(extraOrder, probe.ID)
		}
		merged[probe.ID] = base
	}

	out := make([]T, 0, len(merged))
	for _, d := range defaults {
		out = append(out, merged[idOf(d)])
	}
	for _, id := range extraOrder {
		out = append(out, merged[id])
	}
	return out
}
