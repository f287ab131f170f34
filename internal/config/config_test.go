package config

import "testing"

func TestSeedAcceptsFullInt64Range(t *testing.T) {
	// A nanosecond timestamp, well past 32 bits.
	t.Setenv("INVENTORY_SEED", "1756684800000000000")

	cfg, err := New()
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Search.Seed != 1756684800000000000 {
		t.Errorf("seed = %d, want the configured value untruncated", cfg.Search.Seed)
	}
}

func TestSeedDefaultsNonZero(t *testing.T) {
	t.Setenv("INVENTORY_SEED", "")

	cfg, err := New()
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Search.Seed == 0 {
		t.Error("unset seed stayed zero instead of falling back to the clock")
	}
}

func TestUnknownStoreBackendRejected(t *testing.T) {
	t.Setenv("STORE_BACKEND", "tape")

	if _, err := New(); err == nil {
		t.Fatal("unknown backend accepted")
	}
}
