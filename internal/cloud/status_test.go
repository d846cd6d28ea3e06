package cloud

import (
	"reflect"
	"testing"
)

func TestStatusConditions(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   []string
	}{
		{"none", 0, nil},
		{"single", StatusRegistered, []string{"registered"}},
		{"registered and logged in", StatusRegistered | StatusLoggedIn, []string{"registered", "logged-in"}},
		{"failure alone", StatusFailure, []string{"failure"}},
		{
			"all bits",
			StatusRegistered | StatusTokenExpiry | StatusFailure | StatusLoggedIn |
				StatusLoggedOut | StatusDeregistered | StatusRefreshedToken,
			[]string{"registered", "token-expiry", "failure", "logged-in", "logged-out", "deregistered", "refreshed-token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Conditions(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Conditions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if got := (StatusRegistered | StatusLoggedIn).String(); got != "registered|logged-in" {
		t.Errorf("String() = %q", got)
	}
	if got := Status(0).String(); got != "none" {
		t.Errorf("String() = %q, want none", got)
	}
}

func TestStatusHas(t *testing.T) {
	s := StatusRegistered | StatusTokenExpiry
	if !s.Has(StatusRegistered) || !s.Has(StatusTokenExpiry) {
		t.Error("Has() missed a set bit")
	}
	if s.Has(StatusFailure) {
		t.Error("Has() reported an unset bit")
	}
}
