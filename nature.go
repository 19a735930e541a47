// nature.go — classification of a failure record.
//
// Nature answers "what kind of thing went wrong"; Durability answers
// "would retrying help". Both are closed sets with stable labels so that
// log consumers can match on them.
package xgxdiag

import (
	"fmt"
	"strconv"
)

// Nature classifies an Exception.
type Nature uint8

const (
	// NaturePrecondition: the caller broke a documented requirement.
	NaturePrecondition Nature = iota
	// NatureLocalBug: an internal invariant of this program does not hold.
	NatureLocalBug
	// NatureOsError: a system call failed; the description carries errno text.
	NatureOsError
	NatureNetworkFailure
	NatureOther
)

var natureLabels = [...]string{
	NaturePrecondition:   "precondition",
	NatureLocalBug:       "local_bug",
	NatureOsError:        "os_error",
	NatureNetworkFailure: "network_failure",
	NatureOther:          "other",
}

func (n Nature) String() string {
	if int(n) < len(natureLabels) {
		return natureLabels[n]
	}
	return "nature(" + strconv.Itoa(int(n)) + ")"
}

// style picks the description shape for a fault of this nature.
func (n Nature) style() Style {
	if n == NatureOsError {
		return StyleSyscall
	}
	return StyleAssertion
}

// Durability tells consumers whether the same operation may succeed later.
type Durability uint8

const (
	DurabilityTemporary Durability = iota
	DurabilityPermanent
)

func (d Durability) String() string {
	switch d {
	case DurabilityTemporary:
		return "temporary"
	case DurabilityPermanent:
		return "permanent"
	}
	return "durability(" + strconv.Itoa(int(d)) + ")"
}

// ParseNature maps a label back to its Nature.
func ParseNature(label string) (Nature, error) {
	for i, s := range natureLabels {
		if s == label {
			return Nature(i), nil
		}
	}
	return 0, fmt.Errorf("xgxdiag: unknown nature %q", label)
}
