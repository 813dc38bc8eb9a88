// Package agents implements the three content roles — research, writing,
// review. Each role wraps the generation client with its own instruction
// preamble, task prompts, and activity history.
package agents

import (
	"context"
	"strings"
	"time"

	"ContentCrewAI/app/history"
	"ContentCrewAI/app/models"
)

const timeLayout = "2006-01-02 15:04:05"

type agent struct {
	name         string
	capabilities []string
	systemPrompt string
	model        models.Interface
	history      *history.History
}

func (a *agent) Name() string {
	return a.name
}

func (a *agent) Capabilities() []string {
	out := make([]string, len(a.capabilities))
	copy(out, a.capabilities)
	return out
}

func (a *agent) History() *history.History {
	return a.history
}

// think sends the role's two-part prompt — instruction preamble plus task
// prompt — through one generation call.
func (a *agent) think(ctx context.Context, taskPrompt string, temperature float64, maxTokens int) (string, error) {
	messages := []models.Message{
		{Role: "system", Content: a.systemPrompt},
		{Role: "user", Content: taskPrompt},
	}
	return a.model.Generate(ctx, messages, temperature, maxTokens)
}

// thinkAs is think with a one-off instruction preamble replacing the
// role's own.
func (a *agent) thinkAs(ctx context.Context, system, taskPrompt string, temperature float64, maxTokens int) (string, error) {
	messages := []models.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: taskPrompt},
	}
	return a.model.Generate(ctx, messages, temperature, maxTokens)
}

func (a *agent) logTask(ctx context.Context, entry history.Entry) {
	entry.Agent = a.name
	a.history.Append(ctx, entry)
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func now() string {
	return time.Now().Format(timeLayout)
}
