package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	reqcontext "github.com/va6996/flightdesk/context"
	"github.com/va6996/flightdesk/log"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.Init()
	log.SetOutput(&buf)
	return &buf
}

func TestInfof_IncludesRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := reqcontext.WithRequestID(context.Background(), "req-12345")
	log.Infof(ctx, "handling turn for session %s", "abc")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "handling turn for session abc")
	assert.Contains(t, out, "[req:req-12345]")
}

func TestInfof_NoRequestID(t *testing.T) {
	buf := captureOutput(t)

	log.Infof(context.Background(), "plain message")

	out := buf.String()
	assert.Contains(t, out, "plain message")
	assert.NotContains(t, out, "[req:")
}

func TestErrorf_IncludesRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := reqcontext.WithRequestID(context.Background(), "req-err-1")
	log.Errorf(ctx, "search failed: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "[req:req-err-1]")
}

func TestFormat_CallerIsTestFile(t *testing.T) {
	buf := captureOutput(t)

	log.Info(context.Background(), "caller check")

	assert.Contains(t, buf.String(), "log_test.go:")
}
