package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	svc := New()

	t.Run("benign symptoms stay online", func(t *testing.T) {
		res := svc.Check(Request{
			Description: "runny nose and mild headache since yesterday",
			Symptoms:    []string{"cough", "sore throat"},
		})
		assert.True(t, res.Eligible)
		assert.Equal(t, RouteOnline, res.Route)
		assert.Empty(t, res.Matched)
	})

	t.Run("chest pain routes to emergency", func(t *testing.T) {
		res := svc.Check(Request{Description: "sudden Chest Pain while climbing stairs"})
		assert.False(t, res.Eligible)
		assert.Equal(t, RouteEmergency, res.Route)
		assert.Equal(t, "chest pain", res.Matched)
	})

	t.Run("red flag in symptom tags", func(t *testing.T) {
		res := svc.Check(Request{
			Description: "cut finger while cooking",
			Symptoms:    []string{"BLEEDING"},
		})
		assert.False(t, res.Eligible)
		assert.Equal(t, "bleeding", res.Matched)
	})

	t.Run("severe qualifier triggers regardless of context", func(t *testing.T) {
		res := svc.Check(Request{Description: "severe fatigue after work"})
		assert.False(t, res.Eligible)
	})

	t.Run("no negation handling", func(t *testing.T) {
		res := svc.Check(Request{Description: "no bleeding, just a bruise"})
		assert.False(t, res.Eligible)
	})

	t.Run("empty input is eligible", func(t *testing.T) {
		res := svc.Check(Request{})
		assert.True(t, res.Eligible)
	})
}
