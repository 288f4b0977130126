package notifier

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"nainaland/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifierWritesSubject(t *testing.T) {
	var buf bytes.Buffer
	n := NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, n.Notify(context.Background(), "hello", "world"))
	assert.Contains(t, buf.String(), `"subject":"hello"`)
	assert.Contains(t, buf.String(), `"body":"world"`)
}

func TestContactBody(t *testing.T) {
	pid := 3
	m := model.Message{Name: "Asha", Email: "a@example.com", Phone: "9876543210", Interest: "Farm Land", Message: "Call me", PropertyID: &pid}

	assert.Equal(t, "New enquiry from Asha (Farm Land)", ContactSubject(m))
	body := ContactBody(m)
	assert.Contains(t, body, "Property: #3")
	assert.Contains(t, body, "Call me")
}
