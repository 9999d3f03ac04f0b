package request

import "fmt"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// Tone drives the badge styling of a status.
type Tone string

const (
	ToneNeutral  Tone = "secondary"
	TonePositive Tone = "default"
	ToneNegative Tone = "destructive"
)

// Label returns the French badge text. Anything that is not approved or
// rejected reads as pending.
func (s Status) Label() string {
	switch s {
	case StatusApproved:
		return "Approuvé"
	case StatusRejected:
		return "Refusé"
	default:
		return "En attente"
	}
}

func (s Status) Tone() Tone {
	switch s {
	case StatusApproved:
		return TonePositive
	case StatusRejected:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

func (s Status) Icon() string {
	switch s {
	case StatusApproved:
		return "check-circle"
	case StatusRejected:
		return "x-circle"
	default:
		return "clock"
	}
}
