package qr

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeline-app/backend/internal/master"
)

func TestResolveLocationByPrefixedID(t *testing.T) {
	rec := master.Defaults()
	id := rec.SiteLocations[0].ID

	res := ResolveLocation(&rec, LocationPrefix+id)
	if !res.Registered || res.Location == nil || res.Location.ID != id {
		t.Fatalf("prefixed token should resolve by id: %+v", res)
	}
}

func TestResolveLocationByBareToken(t *testing.T) {
	rec := master.Defaults()
	rec.SiteLocations[2].QRToken = "yard-qr-3"

	res := ResolveLocation(&rec, "yard-qr-3")
	if !res.Registered || res.Location == nil || res.Location.ID != rec.SiteLocations[2].ID {
		t.Fatalf("bare token should resolve via the registered field: %+v", res)
	}
}

func TestResolveLocationSoftMiss(t *testing.T) {
	rec := master.Defaults()
	res := ResolveLocation(&rec, "LOC:does-not-exist")
	if res.Registered || res.Location != nil {
		t.Fatalf("miss should not resolve: %+v", res)
	}
	if res.Token != "LOC:does-not-exist" {
		t.Fatalf("raw token must be preserved: %q", res.Token)
	}
}

func TestResolvePerson(t *testing.T) {
	rec := master.Defaults()
	rec.Personnel[1].QRToken = "HLM-002"

	res := ResolvePerson(&rec, " HLM-002 ")
	if !res.Registered || res.Person == nil || res.Person.ID != rec.Personnel[1].ID {
		t.Fatalf("trimmed token should resolve: %+v", res)
	}

	miss := ResolvePerson(&rec, "HLM-404")
	if miss.Registered || miss.Person != nil {
		t.Fatalf("miss should not resolve: %+v", miss)
	}
}

type fakeCapturer struct {
	started int
	stopped int
	failOn  error
}

func (f *fakeCapturer) Start(ctx context.Context, target Target) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.started++
	return nil
}
func (f *fakeCapturer) Stop()                                      { f.stopped++ }
func (f *fakeCapturer) OnDecode(func(target Target, token string)) {}

func TestGuardStopsPreviousCaptureBeforeRestart(t *testing.T) {
	fake := &fakeCapturer{}
	g := NewGuard(fake)
	ctx := context.Background()

	if err := g.Start(ctx, TargetLocation); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := g.Start(ctx, TargetVictim); err != nil {
		t.Fatalf("retargeted start: %v", err)
	}
	if fake.stopped != 1 {
		t.Fatalf("previous capture must stop before the device is reacquired, stops=%d", fake.stopped)
	}
	if fake.started != 2 {
		t.Fatalf("expected two acquisitions, got %d", fake.started)
	}
}

func TestGuardStopIsIdempotent(t *testing.T) {
	fake := &fakeCapturer{}
	g := NewGuard(fake)

	if err := g.Start(context.Background(), TargetLocation); err != nil {
		t.Fatalf("start: %v", err)
	}
	g.Stop()
	g.Stop()
	if fake.stopped != 1 {
		t.Fatalf("stop on an idle guard must not reach the device, stops=%d", fake.stopped)
	}
}

func TestGuardReleasesOnStartFailure(t *testing.T) {
	fake := &fakeCapturer{failOn: ErrPermissionDenied}
	g := NewGuard(fake)
	ctx := context.Background()

	if err := g.Start(ctx, TargetLocation); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected cause error, got %v", err)
	}
	fake.failOn = nil
	if err := g.Start(ctx, TargetLocation); err != nil {
		t.Fatalf("failed start must not hold the slot: %v", err)
	}
	if fake.stopped != 0 {
		t.Fatalf("nothing was running, stop must not fire, stops=%d", fake.stopped)
	}
}
