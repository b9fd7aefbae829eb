package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/triage"
)

type TriageHandler struct {
	svc triage.Service
}

func NewTriageHandler(svc triage.Service) *TriageHandler {
	return &TriageHandler{svc: svc}
}

type triageResponse struct {
	Eligible bool   `json:"eligible"`
	Route    string `json:"route"`
	Matched  string `json:"matched,omitempty"`
}

// Check screens a symptom description for red flags before an online visit.
func (h *TriageHandler) Check(c fiber.Ctx) error {
	var body struct {
		Description string   `json:"description"`
		Symptoms    []string `json:"symptoms"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res := h.svc.Check(triage.Request{Description: body.Description, Symptoms: body.Symptoms})

	return ok(c, triageResponse{Eligible: res.Eligible, Route: res.Route, Matched: res.Matched})
}
