// Package qr resolves scanned tokens against the master record and defines
// the capture collaborator contract the HTTP layer exposes to clients.
package qr

import (
	"context"
	"errors"
	"strings"

	"github.com/lifeline-app/backend/internal/models"
)

// Capture failure causes. Clients map these to guidance (open settings,
// use photo capture, paste the token by hand).
var (
	ErrPermissionDenied = errors.New("qr: camera permission denied")
	ErrDeviceNotFound   = errors.New("qr: no camera device found")
	ErrDeviceBusy       = errors.New("qr: camera device busy")
	ErrInsecureContext  = errors.New("qr: capture requires a secure context")
)

// Target names what a scan is for.
type Target string

const (
	TargetLocation Target = "location"
	TargetVictim   Target = "victim"
)

// Capturer is a capture collaborator. At most one capture runs at a time:
// Start while running stops the previous capture before acquiring the
// device, so retargeting a scan never leaves the camera held twice.
// OnDecode registers the callback invoked with each decoded token; Stop is
// idempotent.
type Capturer interface {
	Start(ctx context.Context, target Target) error
	Stop()
	OnDecode(fn func(target Target, token string))
}

// LocationPrefix marks tokens that name a site location by id instead of
// carrying the site's registered QR value.
const LocationPrefix = "LOC:"

// Resolution is the outcome of matching a token against the master record.
type Resolution struct {
	Token    string               `json:"token"`
	Person   *models.Person       `json:"person,omitempty"`
	Location *models.SiteLocation `json:"location,omitempty"`
	// Registered is false on a soft miss: the token is kept and the
	// report proceeds with an unregistered marker.
	Registered bool `json:"registered"`
}

// ResolveLocation matches a scanned location token. The prefixed LOC:<id>
// form is tried against catalog ids first, then by convention against the
// bare token fields, so either encoding on the printed labels works.
func ResolveLocation(rec *models.MasterRecord, token string) Resolution {
	token = strings.TrimSpace(token)
	res := Resolution{Token: token}

	if id, ok := strings.CutPrefix(token, LocationPrefix); ok {
		for i := range rec.SiteLocations {
			if rec.SiteLocations[i].ID == id {
				res.Location = &rec.SiteLocations[i]
				res.Registered = true
				return res
			}
		}
	}
	for i := range rec.SiteLocations {
		if rec.SiteLocations[i].QRToken != "" && rec.SiteLocations[i].QRToken == token {
			res.Location = &rec.SiteLocations[i]
			res.Registered = true
			return res
		}
	}
	return res
}

// ResolvePerson matches a scanned helmet token against personnel.
func ResolvePerson(rec *models.MasterRecord, token string) Resolution {
	token = strings.TrimSpace(token)
	res := Resolution{Token: token}
	for i := range rec.Personnel {
		if rec.Personnel[i].QRToken != "" && rec.Personnel[i].QRToken == token {
			res.Person = &rec.Personnel[i]
			res.Registered = true
			return res
		}
	}
	return res
}
