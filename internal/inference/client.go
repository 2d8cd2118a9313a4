package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/abdul-hamid-achik/operant/internal/config"
	operr "github.com/abdul-hamid-achik/operant/internal/errors"
	"github.com/abdul-hamid-achik/operant/internal/logging"
)

const systemPrompt = `You are the action proposer for an autonomous terminal agent.
Given the agent's instructions, history, and available commands, propose exactly
one next action. Respond with a single JSON object and nothing else:

{"thought": "<what you observe and consider>", "plan": "<the step you are taking and why>", "command": "<one command line to run>"}

The command must be one of the listed commands with its arguments on one line.`

// Client wraps the Anthropic SDK as an inference collaborator.
type Client struct {
	client *anthropic.Client
	cfg    *config.Config
	log    *logging.Logger
}

// NewClient creates an Anthropic-backed collaborator.
func NewClient(cfg *config.Config, log *logging.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.RateLimit.MaxRetries),
	}
	client := anthropic.NewClient(opts...)
	return &Client{
		client: &client,
		cfg:    cfg,
		log:    log.WithPrefix("inference"),
	}
}

// Propose sends the assembled context and parses the returned proposal.
func (c *Client) Propose(ctx context.Context, contextText string) (*Proposal, error) {
	c.log.Debug("requesting proposal", logging.Count(len(contextText)), logging.Model(c.cfg.Model.Name))

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model.Name),
		MaxTokens:   int64(c.cfg.Model.MaxTokens),
		Temperature: anthropic.Float(c.cfg.Model.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(contextText)),
		},
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: systemPrompt},
		},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, operr.InferenceTimeout(err)
		}
		c.log.Error("proposal request failed", logging.Error(err))
		return nil, operr.InferenceRequestFailed(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(b.Text)
		}
	}

	proposal, err := ParseProposal(text.String())
	if err != nil {
		c.log.Warn("unparseable proposal", logging.Error(err))
		return nil, err
	}

	return proposal, nil
}

// Ask sends a free-form question and returns the model's plain-text answer.
// Unlike Propose there is no structured-output constraint on the reply.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	c.log.Debug("asking", logging.Count(len(question)), logging.Model(c.cfg.Model.Name))

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model.Name),
		MaxTokens:   int64(c.cfg.Model.MaxTokens),
		Temperature: anthropic.Float(c.cfg.Model.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return "", operr.InferenceTimeout(err)
		}
		return "", operr.InferenceRequestFailed(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(b.Text)
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// ParseProposal extracts the JSON proposal object from model output, which
// may wrap it in prose or a code fence.
func ParseProposal(text string) (*Proposal, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, operr.InferenceRequestFailed(fmt.Errorf("no JSON object in model output"))
	}

	var p Proposal
	if err := json.Unmarshal([]byte(text[start:end+1]), &p); err != nil {
		return nil, operr.InferenceRequestFailed(err)
	}
	return &p, nil
}
