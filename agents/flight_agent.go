package agents

import (
	"context"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/flightdesk/log"
	"github.com/va6996/flightdesk/tools"
)

// WelcomeMessage greets a freshly created chat session
const WelcomeMessage = "Welcome to the AI Flight Assistant!\n\nI can help you find flights for today. Just tell me where you want to fly from and to, you can use city names or airport codes. How can I help you today?"

// errorReply is the canned response when a turn fails internally; the
// chat turn always completes with visible feedback
const errorReply = "Error: something went wrong while processing your request.\n\nPlease try again or contact support if the problem persists."

const systemPrompt = `You are a professional and efficient flight assistant. Your task is to help users find flights for today based on their departure and arrival locations.

**Core Workflow:**
1. When a user mentions city names (like "Karachi", "Lahore", "Dubai", etc.), automatically convert them to airport codes using the get_city_airport_code tool BEFORE searching for flights.

2. If a city has multiple airports, present the options to the user and ask them to choose.

3. Once you have both departure and arrival airport codes, use the search_flights tool to search for available flights.

4. Present the flight information in a clear, formatted way that's easy to read.

**Important Guidelines:**
- ALWAYS convert city names to airport codes first - don't ask the user to provide airport codes manually
- Be proactive in helping with city-to-airport conversion
- If you're unsure about a location, use the get_city_airport_code tool to check
- Use the resolve_date tool when the user speaks in relative dates ("tomorrow", "next Friday")
- Provide helpful context about flight delays, terminals, and status
- If no flights are found, suggest checking different dates or verifying the locations
- Be conversational and helpful throughout the interaction
- Maintain a professional tone without excessive use of emojis

**Examples of what you should handle automatically:**
- "I want a flight from Karachi to Dubai" -> Convert both cities to KHI and DXB, then search
- "Show me flights from London to New York" -> Show multiple airport options for both cities
- "Any flights from ISB to LHE today?" -> Recognize these as airport codes and search directly

Always be polite, helpful, and provide detailed flight information when available.

You are not allowed to talk about anything else other than this program that you have been designed to handle.`

// generateFunc abstracts genkit.Generate so tests can stub the model
type generateFunc func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error)

// FlightAgent drives the model over the registered tools and keeps
// per-session conversation history.
type FlightAgent struct {
	genkit   *genkit.Genkit
	registry *tools.Registry
	model    ai.Model
	sessions *SessionStore

	generate generateFunc
	now      func() time.Time
}

// NewFlightAgent creates a new FlightAgent
func NewFlightAgent(gk *genkit.Genkit, registry *tools.Registry, model ai.Model) *FlightAgent {
	a := &FlightAgent{
		genkit:   gk,
		registry: registry,
		model:    model,
		sessions: NewSessionStore(),
		now:      time.Now,
	}
	a.generate = func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error) {
		return genkit.Generate(ctx, a.genkit, opts...)
	}
	return a
}

// Sessions exposes the session store
func (a *FlightAgent) Sessions() *SessionStore {
	return a.sessions
}

// OpenSession returns the session for id (creating it when unknown,
// or when id is empty) and the welcome message for a new session.
func (a *FlightAgent) OpenSession(id string) (sessionID, welcome string) {
	session, created := a.sessions.GetOrCreate(id)
	if created {
		return session.ID, WelcomeMessage
	}
	return session.ID, ""
}

// Respond handles one chat turn: it runs the model with the registered
// tools over the session history and appends both sides of the exchange
// to the transcript. Model and tool failures never escape as errors;
// they are logged and reported to the user as text.
func (a *FlightAgent) Respond(ctx context.Context, sessionID, message string) string {
	log.Infof(ctx, "FlightAgent: handling turn for session %s", sessionID)

	history := a.sessions.History(sessionID)
	a.sessions.Append(sessionID, RoleUser, message)

	messages := make([]*ai.Message, 0, len(history)+1)
	for _, m := range history {
		switch m.Role {
		case RoleUser:
			messages = append(messages, ai.NewUserTextMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, ai.NewModelTextMessage(m.Content))
		}
	}
	messages = append(messages, ai.NewUserTextMessage(message))

	var toolRefs []ai.ToolRef
	if a.registry != nil {
		for _, tool := range a.registry.GetTools() {
			toolRefs = append(toolRefs, tool)
		}
	}
	log.Debugf(ctx, "FlightAgent: %d tools available", len(toolRefs))

	// Anchor the model on the actual date so "today" means today
	system := "Today is " + a.now().Format("2006-01-02") + ".\n" + systemPrompt

	response, err := a.generate(ctx,
		ai.WithModel(a.model),
		ai.WithSystem(system),
		ai.WithMessages(messages...),
		ai.WithTools(toolRefs...),
		ai.WithMaxTurns(8),
	)
	if err != nil {
		log.Errorf(ctx, "FlightAgent: generate failed: %v", err)
		a.sessions.Append(sessionID, RoleAssistant, errorReply)
		return errorReply
	}

	reply := response.Text()
	if reply == "" {
		log.Warnf(ctx, "FlightAgent: model returned empty response")
		reply = errorReply
	}

	a.sessions.Append(sessionID, RoleAssistant, reply)

	log.Debugf(ctx, "FlightAgent: reply length %d", len(reply))
	return reply
}
