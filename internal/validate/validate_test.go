package validate

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"Asha Rao", true},
		{"", false},
		{"   ", false},
		{"A", false},
		{"R2D2", false},
		{"Jean Luc", true},
	}
	for _, tc := range cases {
		if got := Name(tc.name); got.Valid != tc.valid {
			t.Errorf("Name(%q).Valid = %v, want %v (%s)", tc.name, got.Valid, tc.valid, got.Message)
		}
	}
}

func TestAge(t *testing.T) {
	cases := []struct {
		age   string
		valid bool
	}{
		{"34", true},
		{"1", true},
		{"120", true},
		{"0", false},
		{"121", false},
		{"", false},
		{"abc", false},
		{"12.5", false},
	}
	for _, tc := range cases {
		if got := Age(tc.age); got.Valid != tc.valid {
			t.Errorf("Age(%q).Valid = %v, want %v (%s)", tc.age, got.Valid, tc.valid, got.Message)
		}
	}
}

func TestMobile(t *testing.T) {
	if got := Mobile("12345"); got.Valid {
		t.Error("short mobile accepted")
	} else if !strings.Contains(got.Message, "10-digit") {
		t.Errorf("short mobile message = %q, want mention of 10 digits", got.Message)
	}

	if got := Mobile("9876543210"); !got.Valid {
		t.Errorf("valid mobile rejected: %s", got.Message)
	}

	for _, bad := range []string{"", "98765432101", "98765abc10", "98765 4321"} {
		if Mobile(bad).Valid {
			t.Errorf("Mobile(%q) accepted", bad)
		}
	}
}

func TestEmail(t *testing.T) {
	for _, good := range []string{"asha@example.com", "a.b+c@mail.co.in"} {
		if got := Email(good); !got.Valid {
			t.Errorf("Email(%q) rejected: %s", good, got.Message)
		}
	}
	for _, bad := range []string{"", "plainstring", "a@", "@example.com", "a b@example.com"} {
		if Email(bad).Valid {
			t.Errorf("Email(%q) accepted", bad)
		}
	}
}
