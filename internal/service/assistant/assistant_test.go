package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	t.Run("urgent keywords win first", func(t *testing.T) {
		got := Fallback("I have chest pain and a fever")
		assert.Contains(t, got, "emergency")
	})

	t.Run("keyword match is case insensitive", func(t *testing.T) {
		a := Fallback("How do I BOOK a Doctor?")
		b := Fallback("how do i book a doctor?")
		assert.Equal(t, a, b)
		assert.Contains(t, a, "book")
	})

	t.Run("deterministic for same input", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.Equal(t, Fallback("migraine again"), Fallback("migraine again"))
		}
	})

	t.Run("no keyword falls back to default", func(t *testing.T) {
		assert.Equal(t, fallbackDefault, Fallback("hello there"))
	})
}

func TestChatWithoutUpstream(t *testing.T) {
	svc := New(nil)

	reply, err := svc.Chat(context.Background(), Request{Message: "where can I donate blood?"})
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	assert.NotEmpty(t, reply.Message)

	reply, err = svc.Chat(context.Background(), Request{Message: "   "})
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	assert.Equal(t, fallbackDefault, reply.Message)
}
