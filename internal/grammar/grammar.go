package grammar

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

// Issue is a single grammar or style problem found in a note.
type Issue struct {
	Original    string
	Suggestion  string
	Explanation string
}

// Provider checks prose and reports issues. Implementations are expected
// to be safe for reuse across checks.
type Provider interface {
	Check(ctx context.Context, text string) ([]Issue, error)
}

const systemPrompt = `You are a copy editor for personal markdown notes.
Find grammar, spelling, and awkward phrasing problems in the text.
Ignore markdown syntax, code blocks, and YAML frontmatter.
Respond with a JSON array only, no prose. Each element:
{"original": "...", "suggestion": "...", "explanation": "..."}
Return [] when the text is clean.`

const maxTokens = 1024

type AnthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

func (p *AnthropicProvider) Check(ctx context.Context, text string) ([]Issue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("grammar check failed: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}

	return ParseIssues(reply.String())
}

// ParseIssues decodes the model's JSON reply, tolerating a fenced code
// block wrapper.
func ParseIssues(reply string) ([]Issue, error) {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```json")
		reply = strings.TrimPrefix(reply, "```")
		reply = strings.TrimSuffix(strings.TrimSpace(reply), "```")
		reply = strings.TrimSpace(reply)
	}

	parsed := gjson.Parse(reply)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("unexpected grammar reply: %q", truncate(reply, 80))
	}

	var issues []Issue
	for _, item := range parsed.Array() {
		issue := Issue{
			Original:    item.Get("original").String(),
			Suggestion:  item.Get("suggestion").String(),
			Explanation: item.Get("explanation").String(),
		}
		if issue.Original == "" && issue.Suggestion == "" {
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
