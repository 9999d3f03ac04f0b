package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", "json", &buf)

	l.Info("hidden")
	l.WithField("category", "travel").Warn("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "travel", line["category"])
}

func TestNew_UnknownLevelIsInfo(t *testing.T) {
	l := New("loud", "text", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	entry := New("info", "text", &buf).WithField("request-id", "r1")
	ctx := WithLogger(context.Background(), entry)
	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request-id=r1")
}
