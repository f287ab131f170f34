package kv

import (
	"bytes"
	"context"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, ok, err := store.Get(ctx, "bookings"); ok || err != nil {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	if err := store.Put(ctx, "bookings", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "bookings")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte(`[]`)) {
		t.Errorf("got %q", got)
	}

	// Mutating the returned slice must not affect the stored copy.
	got[0] = 'X'
	again, _, _ := store.Get(ctx, "bookings")
	if !bytes.Equal(again, []byte(`[]`)) {
		t.Error("stored value aliased the returned slice")
	}

	if err := store.Delete(ctx, "bookings"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "bookings"); ok {
		t.Error("key present after delete")
	}
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	if _, ok, err := store.Get(ctx, "bookings"); ok || err != nil {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	payload := []byte(`[{"pnr":"AB12CD34EF"}]`)
	if err := store.Put(ctx, "bookings", payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "bookings")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %q, want %q", got, payload)
	}

	// Overwrite replaces the whole blob.
	if err := store.Put(ctx, "bookings", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = store.Get(ctx, "bookings")
	if !bytes.Equal(got, []byte(`[]`)) {
		t.Errorf("after overwrite got %q", got)
	}

	if err := store.Delete(ctx, "bookings"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "bookings"); err != nil {
		t.Fatalf("delete of missing key: %v", err)
	}
}

func TestFileSanitizesKeys(t *testing.T) {
	ctx := context.Background()

	store, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	if err := store.Put(ctx, "nxtbus:v1/bookings", []byte(`[]`)); err != nil {
		t.Fatalf("put with separator chars: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "nxtbus:v1/bookings"); !ok {
		t.Error("sanitized key not retrievable")
	}
}
