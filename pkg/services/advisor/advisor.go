package advisor

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel     = openai.GPT4TurboPreview
	defaultMaxTokens = 1000
	temperature      = 0.3
)

type chatClient interface {
	CreateChatCompletion(
		ctx context.Context,
		request openai.ChatCompletionRequest,
	) (openai.ChatCompletionResponse, error)
}

type Settings struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Advisor turns a cost+usage dataset into a priority-ordered recommendation
// list. The reasoning call degrades to the fallback catalog on any failure;
// Generate never returns an empty list and never fails.
type Advisor struct {
	client    chatClient
	model     string
	maxTokens int
}

func NewAdvisor(settings Settings) *Advisor {
	a := &Advisor{
		model:     settings.Model,
		maxTokens: settings.MaxTokens,
	}
	if a.model == "" {
		a.model = defaultModel
	}
	if a.maxTokens == 0 {
		a.maxTokens = defaultMaxTokens
	}
	if settings.APIKey != "" {
		a.client = openai.NewClient(settings.APIKey)
	}
	return a
}

// Generate produces recommendations for the given dataset, ordered by
// descending priority (stable for ties).
func (a *Advisor) Generate(
	ctx context.Context,
	costs []domain.CostRecord,
	usage []domain.UsageSample,
) []domain.Recommendation {
	logger := zerolog.Ctx(ctx)

	if a.client == nil {
		logger.Debug().Msg("reasoning service not configured, using fallback catalog")
		return sortByPriority(fallbackCatalog())
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(costs, usage)},
		},
		MaxTokens:   a.maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("reasoning service call failed, using fallback catalog")
		return sortByPriority(fallbackCatalog())
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Warn().Msg("reasoning service returned no content, using fallback catalog")
		return sortByPriority(fallbackCatalog())
	}

	var parsed []api.Recommendation
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		logger.Warn().Err(err).Msg("reasoning service response is not valid JSON, using fallback catalog")
		return sortByPriority(fallbackCatalog())
	}

	recs := normalize(parsed)
	if len(recs) == 0 {
		logger.Warn().Msg("no usable recommendations in reasoning service response, using fallback catalog")
		return sortByPriority(fallbackCatalog())
	}

	return sortByPriority(recs)
}

// GeneralRecommendations returns the fallback catalog in display order,
// for callers that need a recommendation list without a reasoning call.
func (a *Advisor) GeneralRecommendations() []domain.Recommendation {
	return sortByPriority(fallbackCatalog())
}

func sortByPriority(recs []domain.Recommendation) []domain.Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	return recs
}
