package core

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/flightdesk/log"
	"github.com/va6996/flightdesk/tools"
)

// DateInput defines the input for the date tool
type DateInput struct {
	Expression string `json:"expression" description:"JavaScript expression to calculate a date. Variable 'now' is available as current timestamp in milliseconds. Leave empty to get today's date."`
}

// DateOutput carries the resolved date in forms useful for a search
type DateOutput struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Weekday string `json:"weekday"` // e.g. "Monday"
}

// DateTool resolves relative date phrasing ("today", "next Friday") to
// concrete dates before a flight search
type DateTool struct {
	Now func() time.Time
}

// NewDateTool creates a new DateTool and registers it
func NewDateTool(gk *genkit.Genkit, registry *tools.Registry) *DateTool {
	t := &DateTool{
		Now: time.Now,
	}

	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DateInput, *DateOutput](
		gk,
		"resolve_date",
		t.Description(),
		func(ctx *ai.ToolContext, input *DateInput) (*DateOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		expression, _ := args["expression"].(string)
		return t.Execute(ctx, &DateInput{Expression: expression})
	})

	log.Info(context.Background(), "Registered tool: resolve_date")

	return t
}

func (t *DateTool) Name() string {
	return "resolve_date"
}

func (t *DateTool) Description() string {
	return `Resolves a date for flight searches. With no expression, returns today's date. Otherwise executes a JavaScript expression; variable 'now' holds the current timestamp (milliseconds) and the last expression is the return value (a Date object or ISO string).
Examples:
- Today: ""
- Tomorrow: "new Date(now + 86400000)"
- Next Friday: "var d = new Date(now); d.setDate(d.getDate() + (12 - d.getDay()) % 7); if(d.getDay() !== 5 || d <= now) d.setDate(d.getDate() + 7); d"`
}

// Execute evaluates the expression and normalizes the result to a date
func (t *DateTool) Execute(ctx context.Context, input *DateInput) (*DateOutput, error) {
	if input == nil || input.Expression == "" {
		return t.output(t.Now()), nil
	}

	log.Debugf(ctx, "DateTool executing expression: %s", input.Expression)

	vm := goja.New()
	if err := vm.Set("now", t.Now().UnixMilli()); err != nil {
		return nil, fmt.Errorf("failed to set 'now': %w", err)
	}

	val, err := vm.RunString(input.Expression)
	if err != nil {
		log.Errorf(ctx, "DateTool: js execution failed: %v", err)
		return nil, fmt.Errorf("js execution failed: %w", err)
	}

	exported := val.Export()
	if exported == nil {
		return nil, fmt.Errorf("result is null or undefined")
	}

	// Goja converts JS Date objects to time.Time
	if dateObj, ok := exported.(time.Time); ok {
		return t.output(dateObj), nil
	}

	if str, ok := exported.(string); ok {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, str); err == nil {
				return t.output(parsed), nil
			}
		}
	}

	return nil, fmt.Errorf("result is not a valid Date object or ISO string")
}

func (t *DateTool) output(d time.Time) *DateOutput {
	return &DateOutput{
		Date:    d.Format("2006-01-02"),
		Weekday: d.Weekday().String(),
	}
}
