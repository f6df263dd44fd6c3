// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package wizard implements the get-involved flow as a finite state
// machine. Transition is pure; the handler layer stores the current state in
// the visitor's session and performs all side effects (lead inserts) before
// feeding the corresponding action back in.
package wizard

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// State is a step in the get-involved flow.
type State string

// Wizard states. Choosing is the entry point and the state any unknown
// session value normalizes to.
const (
	StateChoosing                State = "choosing"
	StateVolunteerForm           State = "volunteer_form"
	StateDonateForm              State = "donate_form"
	StatePartnerForm             State = "partner_form"
	StateGeneralForm             State = "general_form"
	StatePaymentInstructions     State = "payment_instructions"
	StateSubmissionAcknowledged  State = "submission_acknowledged"
)

// Path is one of the involvement choices offered on the first step.
type Path string

// Involvement paths.
const (
	PathVolunteer Path = "volunteer"
	PathDonate    Path = "donate"
	PathPartner   Path = "partner"
	PathGeneral   Path = "general"
)

// Action drives a state transition.
type Action struct {
	// Kind selects the transition.
	Kind ActionKind
	// Path is required for ActionChoose and ignored otherwise.
	Path Path
}

// ActionKind enumerates the transitions a visitor or the handler layer can
// trigger.
type ActionKind string

// Action kinds. SubmissionCreated and PledgeCreated are fed in by the
// handler after the corresponding row is written, never directly by the
// visitor.
const (
	ActionChoose            ActionKind = "choose"
	ActionBack              ActionKind = "back"
	ActionSubmissionCreated ActionKind = "submission_created"
	ActionPledgeCreated     ActionKind = "pledge_created"
	ActionReset             ActionKind = "reset"
)

// ErrInvalidTransition reports an action that is not legal in the current
// state. The caller leaves the stored state untouched.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Normalize maps unknown or stale state values to the entry state so a
// session written by an older build cannot strand a visitor.
func Normalize(s State) State {
	switch s {
	case StateChoosing, StateVolunteerForm, StateDonateForm, StatePartnerForm,
		StateGeneralForm, StatePaymentInstructions, StateSubmissionAcknowledged:
		return s
	}
	return StateChoosing
}

// Transition computes the next state for an action. It has no side effects
// and rejects illegal moves with ErrInvalidTransition.
func Transition(current State, action Action) (State, error) {
	current = Normalize(current)

	if action.Kind == ActionReset {
		return StateChoosing, nil
	}

	switch current {
	case StateChoosing:
		if action.Kind == ActionChoose {
			switch action.Path {
			case PathVolunteer:
				return StateVolunteerForm, nil
			case PathDonate:
				return StateDonateForm, nil
			case PathPartner:
				return StatePartnerForm, nil
			case PathGeneral:
				return StateGeneralForm, nil
			}
		}

	case StateVolunteerForm, StatePartnerForm, StateGeneralForm:
		switch action.Kind {
		case ActionBack:
			return StateChoosing, nil
		case ActionSubmissionCreated:
			return StateSubmissionAcknowledged, nil
		}

	case StateDonateForm:
		switch action.Kind {
		case ActionBack:
			return StateChoosing, nil
		case ActionPledgeCreated:
			return StatePaymentInstructions, nil
		}

	case StatePaymentInstructions:
		if action.Kind == ActionBack {
			return StateDonateForm, nil
		}

	case StateSubmissionAcknowledged:
		// Terminal until reset.
	}

	return current, fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, action.Kind, current)
}

// ErrInvalidAmount reports a donation amount that is not a strictly positive
// finite number. No pledge row may be written for such input.
var ErrInvalidAmount = errors.New("invalid donation amount")

// ParseAmount parses a donation amount entered by a visitor. Only plain
// decimal numbers greater than zero are accepted; "0", negatives, signs,
// exponent and hex forms and junk all fail.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// ParseFloat also understands "1e3", "0x1p4", "+5" and "Inf"; none of
	// those are acceptable on a donation form.
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, ErrInvalidAmount
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

// PaymentURI builds the UPI deep link for a pledge. The payee handle and
// name come from the tenant configuration.
func PaymentURI(handle, payeeName string, amount float64, currency string) string {
	q := url.Values{}
	q.Set("pa", handle)
	q.Set("pn", payeeName)
	q.Set("cu", currency)
	q.Set("am", strconv.FormatFloat(amount, 'f', -1, 64))
	return "upi://pay?" + q.Encode()
}
