// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package wizard

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		action  Action
		want    State
		wantErr bool
	}{
		{"choose volunteer", StateChoosing, Action{Kind: ActionChoose, Path: PathVolunteer}, StateVolunteerForm, false},
		{"choose donate", StateChoosing, Action{Kind: ActionChoose, Path: PathDonate}, StateDonateForm, false},
		{"choose partner", StateChoosing, Action{Kind: ActionChoose, Path: PathPartner}, StatePartnerForm, false},
		{"choose general", StateChoosing, Action{Kind: ActionChoose, Path: PathGeneral}, StateGeneralForm, false},
		{"choose unknown path", StateChoosing, Action{Kind: ActionChoose, Path: "hack"}, StateChoosing, true},
		{"back from choosing illegal", StateChoosing, Action{Kind: ActionBack}, StateChoosing, true},

		{"volunteer back", StateVolunteerForm, Action{Kind: ActionBack}, StateChoosing, false},
		{"volunteer submit", StateVolunteerForm, Action{Kind: ActionSubmissionCreated}, StateSubmissionAcknowledged, false},
		{"volunteer pledge illegal", StateVolunteerForm, Action{Kind: ActionPledgeCreated}, StateVolunteerForm, true},

		{"donate back", StateDonateForm, Action{Kind: ActionBack}, StateChoosing, false},
		{"donate pledge", StateDonateForm, Action{Kind: ActionPledgeCreated}, StatePaymentInstructions, false},
		{"donate submit illegal", StateDonateForm, Action{Kind: ActionSubmissionCreated}, StateDonateForm, true},

		{"payment back to donate", StatePaymentInstructions, Action{Kind: ActionBack}, StateDonateForm, false},
		{"payment choose illegal", StatePaymentInstructions, Action{Kind: ActionChoose, Path: PathDonate}, StatePaymentInstructions, true},

		{"acknowledged is terminal", StateSubmissionAcknowledged, Action{Kind: ActionBack}, StateSubmissionAcknowledged, true},

		{"reset from anywhere", StatePaymentInstructions, Action{Kind: ActionReset}, StateChoosing, false},
		{"reset from terminal", StateSubmissionAcknowledged, Action{Kind: ActionReset}, StateChoosing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.action)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("err = %v, want ErrInvalidTransition", err)
				}
				// An illegal action leaves the state where it was.
				if got != tt.from {
					t.Errorf("state moved to %s on illegal action", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transition: %v", err)
			}
			if got != tt.want {
				t.Errorf("Transition(%s, %s) = %s, want %s", tt.from, tt.action.Kind, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("garbage"); got != StateChoosing {
		t.Errorf("Normalize(garbage) = %s, want choosing", got)
	}
	if got := Normalize(StateDonateForm); got != StateDonateForm {
		t.Errorf("Normalize(donate_form) = %s", got)
	}
	if got := Normalize(""); got != StateChoosing {
		t.Errorf("Normalize(\"\") = %s, want choosing", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"500", 500, false},
		{" 100 ", 100, false},
		{"1", 1, false},
		{"10.50", 10.5, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1e3", 0, true},
		{"0x1p4", 0, true},
		{"+5", 0, true},
		{"Inf", 0, true},
		{"NaN", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q): err = %v, want ErrInvalidAmount", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPaymentURI(t *testing.T) {
	uri := PaymentURI("causeway@upi", "Causeway Foundation", 500, "INR")
	want := "upi://pay?am=500&cu=INR&pa=causeway%40upi&pn=Causeway+Foundation"
	if uri != want {
		t.Errorf("PaymentURI = %q, want %q", uri, want)
	}

	uri = PaymentURI("causeway@upi", "Causeway Foundation", 10.5, "INR")
	want = "upi://pay?am=10.5&cu=INR&pa=causeway%40upi&pn=Causeway+Foundation"
	if uri != want {
		t.Errorf("PaymentURI = %q, want %q", uri, want)
	}
}
