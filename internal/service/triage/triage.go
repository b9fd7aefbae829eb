// Package triage screens visit requests for symptoms that rule out an
// online consultation.
package triage

import (
	"strings"
)

// redFlagPhrases route straight to emergency care. Matching is a plain
// case-insensitive substring scan with no negation handling, so "no
// bleeding" still triggers; erring toward emergency is intentional.
var redFlagPhrases = []string{
	"chest pain",
	"severe",
	"bleeding",
}

const (
	RouteOnline    = "online"
	RouteEmergency = "emergency"
)

type Request struct {
	Description string
	Symptoms    []string
}

type Result struct {
	Eligible bool   // eligible for online consultation
	Route    string // online | emergency
	Matched  string // phrase that triggered the emergency route, if any
}

type Service interface {
	Check(req Request) Result
}

type triageService struct{}

func New() Service {
	return &triageService{}
}

func (s *triageService) Check(req Request) Result {
	haystack := strings.ToLower(req.Description)
	for _, sym := range req.Symptoms {
		haystack += "\n" + strings.ToLower(sym)
	}

	for _, phrase := range redFlagPhrases {
		if strings.Contains(haystack, phrase) {
			return Result{Eligible: false, Route: RouteEmergency, Matched: phrase}
		}
	}
	return Result{Eligible: true, Route: RouteOnline}
}
