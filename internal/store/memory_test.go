package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryMasterRoundTrip(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	if _, err := st.LoadMaster(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}
	if err := st.SaveMaster(ctx, []byte(`{"version":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc, err := st.LoadMaster(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc) != `{"version":1}` {
		t.Fatalf("unexpected document %q", doc)
	}
}

func TestMemorySessionRoundTrip(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	if _, err := st.LoadSession(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.SaveSession(ctx, "s1", []byte(`{"id":"s1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc, err := st.LoadSession(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc) != `{"id":"s1"}` {
		t.Fatalf("unexpected document %q", doc)
	}
	if err := st.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.LoadSession(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("session survived delete")
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	in := []byte(`{"version":1}`)
	if err := st.SaveMaster(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[0] = 'X'

	doc, err := st.LoadMaster(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc[0] != '{' {
		t.Fatalf("store shares the caller's buffer")
	}
	doc[1] = 'Y'
	again, _ := st.LoadMaster(ctx)
	if again[1] == 'Y' {
		t.Fatalf("store leaked its internal buffer")
	}
}
