// Package assistant answers in-app health questions, proxying an upstream
// chat-completion service with a deterministic canned fallback.
package assistant

import (
	"context"
	"log/slog"
	"strings"

	upstream "github.com/auxillium/auxillium_backend/pkg/assistant"
)

type Request struct {
	Message    string
	Specialist string // optional context for the upstream
	Service    string
	Context    string
}

type Reply struct {
	Message  string
	Fallback bool // true when the canned response was used
}

type Service interface {
	Chat(ctx context.Context, req Request) (*Reply, error)
}

type assistantService struct {
	client *upstream.Client
}

func New(client *upstream.Client) Service {
	return &assistantService{client: client}
}

// fallbackRules map keywords to canned guidance, checked in order; the
// first match wins so responses stay deterministic.
var fallbackRules = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"chest pain", "heart attack", "can't breathe", "cannot breathe"},
		reply:    "This sounds urgent. Please call emergency services or go to the nearest emergency department right away.",
	},
	{
		keywords: []string{"fever", "temperature"},
		reply:    "For fever, rest and fluids help most adults. Seek care if it passes 39°C, lasts more than three days, or comes with a stiff neck, rash, or confusion.",
	},
	{
		keywords: []string{"headache", "migraine"},
		reply:    "Most headaches settle with rest, hydration, and over-the-counter pain relief. A sudden, worst-ever headache or one with vision changes needs urgent care.",
	},
	{
		keywords: []string{"appointment", "book", "doctor"},
		reply:    "You can book a visit from the Doctors tab: pick a specialty, choose an open time, and confirm. Your booking code appears under Appointments.",
	},
	{
		keywords: []string{"medicine", "medication", "pharmacy", "drug"},
		reply:    "Use the Pharmacy tab to compare medicine prices near you. Always follow the dose on your prescription and ask a pharmacist about interactions.",
	},
	{
		keywords: []string{"blood", "donate", "donor"},
		reply:    "Thank you for considering donation. Open the Blood tab to see nearby requests matching your blood type, or mark yourself as a donor in your profile.",
	},
}

const fallbackDefault = "I can help with booking doctors, comparing medicine prices, health records, and blood donation. Could you tell me a bit more about what you need?"

// Chat forwards the message upstream and falls back to canned guidance when
// the upstream is disabled or failing.
func (s *assistantService) Chat(ctx context.Context, req Request) (*Reply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return &Reply{Message: fallbackDefault, Fallback: true}, nil
	}

	if s.client != nil && s.client.Enabled() {
		answer, err := s.client.Complete(ctx, message)
		if err == nil {
			return &Reply{Message: answer}, nil
		}
		slog.Warn("assistant upstream failed, using fallback", "error", err)
	}

	return &Reply{Message: Fallback(message), Fallback: true}, nil
}

// Fallback returns the canned reply for a message, first matching rule wins.
func Fallback(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return fallbackDefault
}
