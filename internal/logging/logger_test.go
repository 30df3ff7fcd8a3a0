package logging

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	logger := NewLogger(true)
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Errorf("logger from context, got: %p, expected: %p", got, logger)
	}
	if got := FromContext(context.Background()); got != DefaultLogger() {
		t.Errorf("logger without context value should be the default logger")
	}
}
