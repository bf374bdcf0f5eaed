// Package domain holds the moderation records the console operates on.
package domain

import "time"

// Paper is one submission record awaiting (or holding) a moderation
// decision. Field tags match the backend's JSON shape.
type Paper struct {
	ID          int       `json:"pid"`
	Name        string    `json:"name"`
	Info        string    `json:"info"`
	SubmittedAt time.Time `json:"time"`
	Email       string    `json:"email,omitempty"`
	Color       string    `json:"color"`
	Decision    Decision  `json:"processed"`
}

// Pending reports whether the paper still awaits a decision.
func (p Paper) Pending() bool {
	return p.Decision == DecisionPending
}
