package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(generate generateFunc) *FlightAgent {
	return &FlightAgent{
		sessions: NewSessionStore(),
		generate: generate,
		now: func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		},
	}
}

func cannedResponse(text string) *ai.ModelResponse {
	return &ai.ModelResponse{Message: ai.NewModelTextMessage(text)}
}

func TestFlightAgent_OpenSession(t *testing.T) {
	agent := newTestAgent(nil)

	id, welcome := agent.OpenSession("")
	assert.NotEmpty(t, id)
	assert.Equal(t, WelcomeMessage, welcome)

	// Reopening the same session skips the welcome
	sameID, welcome := agent.OpenSession(id)
	assert.Equal(t, id, sameID)
	assert.Empty(t, welcome)
}

func TestFlightAgent_Respond(t *testing.T) {
	agent := newTestAgent(func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error) {
		return cannedResponse("The airport code for Karachi is KHI"), nil
	})
	id, _ := agent.OpenSession("")

	reply := agent.Respond(context.Background(), id, "What is the airport code for Karachi?")
	assert.Equal(t, "The airport code for Karachi is KHI", reply)

	history := agent.Sessions().History(id)
	require.Len(t, history, 2)
	assert.Equal(t, Message{Role: RoleUser, Content: "What is the airport code for Karachi?"}, history[0])
	assert.Equal(t, Message{Role: RoleAssistant, Content: "The airport code for Karachi is KHI"}, history[1])
}

func TestFlightAgent_Respond_GenerateError(t *testing.T) {
	agent := newTestAgent(func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error) {
		return nil, errors.New("model unavailable")
	})
	id, _ := agent.OpenSession("")

	reply := agent.Respond(context.Background(), id, "hello")
	assert.Equal(t, errorReply, reply)

	// The failed turn is still recorded so the transcript stays coherent
	history := agent.Sessions().History(id)
	require.Len(t, history, 2)
	assert.Equal(t, errorReply, history[1].Content)
}

func TestFlightAgent_Respond_EmptyReply(t *testing.T) {
	agent := newTestAgent(func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error) {
		return cannedResponse(""), nil
	})
	id, _ := agent.OpenSession("")

	reply := agent.Respond(context.Background(), id, "hello")
	assert.Equal(t, errorReply, reply)
}

func TestFlightAgent_Respond_HistoryGrowsAcrossTurns(t *testing.T) {
	turn := 0
	agent := newTestAgent(func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error) {
		turn++
		if turn == 1 {
			return cannedResponse("first reply"), nil
		}
		return cannedResponse("second reply"), nil
	})
	id, _ := agent.OpenSession("")

	agent.Respond(context.Background(), id, "first question")
	agent.Respond(context.Background(), id, "second question")

	history := agent.Sessions().History(id)
	require.Len(t, history, 4)
	assert.Equal(t, "first question", history[0].Content)
	assert.Equal(t, "first reply", history[1].Content)
	assert.Equal(t, "second question", history[2].Content)
	assert.Equal(t, "second reply", history[3].Content)
}
