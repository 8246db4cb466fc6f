package context_test

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	reqcontext "github.com/va6996/flightdesk/context"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := reqcontext.WithRequestID(stdctx.Background(), "req-1")
	assert.Equal(t, "req-1", reqcontext.RequestIDFromContext(ctx))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Equal(t, "", reqcontext.RequestIDFromContext(stdctx.Background()))
	assert.Equal(t, "", reqcontext.RequestIDFromContext(nil))
}

func TestNewRequestID_Unique(t *testing.T) {
	one := reqcontext.NewRequestID()
	two := reqcontext.NewRequestID()
	assert.NotEmpty(t, one)
	assert.NotEqual(t, one, two)
}
