package model

import (
	"fmt"
	"strings"
)

// Intent is a coarse question-type label drawn from a closed set.
type Intent string

const (
	IntentRegistration Intent = "Registration"
	IntentStaffLookup  Intent = "StaffLookup"
	IntentPolicyFAQ    Intent = "PolicyFAQ"
	IntentCourse       Intent = "Course"
	IntentUnknown      Intent = "Unknown"
)

// ParseIntent maps a rules-file intent name to a member of the closed intent
// set. Names are case-insensitive; underscores and camel case are both
// accepted (STAFF_LOOKUP and StaffLookup name the same intent).
func ParseIntent(name string) (Intent, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	switch normalized {
	case "REGISTRATION":
		return IntentRegistration, nil
	case "STAFFLOOKUP":
		return IntentStaffLookup, nil
	case "POLICYFAQ":
		return IntentPolicyFAQ, nil
	case "COURSE":
		return IntentCourse, nil
	case "UNKNOWN":
		return IntentUnknown, nil
	default:
		return IntentUnknown, fmt.Errorf("unknown intent name: %q", name)
	}
}

// String returns the canonical intent name.
func (i Intent) String() string { return string(i) }
