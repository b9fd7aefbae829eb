package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/assistant"
)

type AssistantHandler struct {
	svc assistant.Service
}

func NewAssistantHandler(svc assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Chat proxies a single message to the assistant. The response is always
// a single {message} envelope so the client never cares whether the
// upstream or the canned fallback answered.
func (h *AssistantHandler) Chat(c fiber.Ctx) error {
	var body struct {
		Message    string `json:"message"`
		Specialist string `json:"specialist"`
		Service    string `json:"service"`
		Context    string `json:"context"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	reply, err := h.svc.Chat(c.Context(), assistant.Request{
		Message:    body.Message,
		Specialist: body.Specialist,
		Service:    body.Service,
		Context:    body.Context,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{"message": reply.Message})
}
