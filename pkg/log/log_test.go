package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext_Default(t *testing.T) {
	assert.Same(t, rootLogger, L(context.Background()))
}

func TestWithLogField(t *testing.T) {
	ctx := WithLogField(context.Background(), "sessionId", "s1")
	entry := L(ctx)
	assert.Equal(t, "s1", entry.Data["sessionId"])
}

func TestWithLogField_TruncatesLongValues(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	ctx := WithLogField(context.Background(), "k", string(long))
	v := L(ctx).Data["k"].(string)
	assert.Len(t, v, 64)
	assert.Contains(t, v, "...")
}

func TestSetLevel(t *testing.T) {
	// Must not panic on arbitrary names
	SetLevel("debug")
	SetLevel("nonsense")
	SetLevel("")
}
