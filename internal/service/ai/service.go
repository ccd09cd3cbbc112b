// Package ai wraps the external chat-completion service behind a single
// synchronous call. Model, provider, and output budget are fixed at
// construction time, never per request.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberchat/internal/config"
	"barberchat/internal/models"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// ErrGateway marks every failure of the upstream completion call (network,
// auth, quota). Callers match it with errors.Is to map it to a server error.
var ErrGateway = errors.New("llm gateway error")

const claudeMaxTokens = 1000

// Service is the gateway to the configured chat model.
type Service struct {
	chatModel model.ToolCallingChatModel
	timeout   time.Duration
}

// NewService builds the gateway for the provider selected in config.
func NewService(cfg *config.Config) (*Service, error) {
	provCfg := cfg.ActiveProvider()

	var chatModel model.ToolCallingChatModel
	var err error
	switch cfg.Provider {
	case "openai":
		chatModel, err = openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
			BaseURL: provCfg.BaseURL,
			Model:   provCfg.Model,
			APIKey:  provCfg.APIKey,
		})
	case "gemini":
		client, cerr := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: provCfg.APIKey,
		})
		if cerr != nil {
			return nil, fmt.Errorf("create gemini client: %w", cerr)
		}
		chatModel, err = gemini.NewChatModel(context.Background(), &gemini.Config{
			Client: client,
			Model:  provCfg.Model,
		})
	case "claude":
		var baseURLPtr *string
		if provCfg.BaseURL != "" {
			baseURLPtr = &provCfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(context.Background(), &claude.Config{
			APIKey:    provCfg.APIKey,
			Model:     provCfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: claudeMaxTokens,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", cfg.Provider, err)
	}

	return &Service{
		chatModel: chatModel,
		timeout:   cfg.GatewayTimeout(),
	}, nil
}

// Complete sends the ordered turn list upstream and returns the completion
// text. The call is bounded by the configured timeout; a timeout surfaces
// like any other gateway failure.
func (s *Service) Complete(ctx context.Context, turns []*models.Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.chatModel.Generate(ctx, convertTurns(turns))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: empty completion", ErrGateway)
	}
	return resp.Content, nil
}

func convertTurns(turns []*models.Turn) []*schema.Message {
	messages := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		var role schema.RoleType
		switch turn.Role {
		case models.RoleUser:
			role = schema.User
		case models.RoleAssistant:
			role = schema.Assistant
		case models.RoleSystem:
			role = schema.System
		default:
			role = schema.User
		}

		messages = append(messages, &schema.Message{
			Role:    role,
			Content: turn.Content,
		})
	}
	return messages
}
