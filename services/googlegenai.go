package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"
)

// LLMModelName selects the generation model for a request.
type LLMModelName int32

const (
	// Flash25Image handles the room staging flow.
	Flash25Image LLMModelName = iota
	// Pro3Image handles the blueprint-to-3D flow.
	Pro3Image
)

func (t LLMModelName) String() string {
	switch t {
	case Pro3Image:
		return "gemini-3-pro-image-preview"
	default:
		return "gemini-2.5-flash-image-preview"
	}
}

var (
	ErrNotConfigured = errors.New("google ai client is not configured")
	// ErrEmptyResponse means the provider answered but produced nothing
	// usable: no candidates, or candidates without image or text parts.
	ErrEmptyResponse = errors.New("model returned no usable content")
)

// TextOnlyError is returned when the model declined to generate an image and
// answered with text instead. Distinct from an outage so callers can surface
// the model's own explanation.
type TextOnlyError struct {
	Text string
}

func (e *TextOnlyError) Error() string {
	return fmt.Sprintf("model returned text instead of an image: %s", e.Text)
}

type ProviderImage struct {
	Data     []byte
	MIMEType string
}

type GenerationResult struct {
	Image      ProviderImage
	Text       string
	PromptUsed string
}

// StagingProcessor is the single-shot generation capability: images plus a
// text prompt in, one generated image out.
type StagingProcessor interface {
	Configured() bool
	GenerateStagedImage(ctx context.Context, model LLMModelName, prompt string, images ...ProviderImage) (*GenerationResult, error)
}

// GoogleStagingService talks to the Gemini API. Clients are obtained through
// the injected cache so repeated requests reuse one client per API key.
type GoogleStagingService struct {
	apiKey      string
	clients     *ClientCacheService
	callTimeout time.Duration
}

func NewGoogleStagingService(apiKey string, clients *ClientCacheService) *GoogleStagingService {
	timeoutSeconds, err := strconv.Atoi(GetEnv("PROVIDER_TIMEOUT_SECONDS", "90"))
	if err != nil || timeoutSeconds <= 0 {
		log.Printf("Invalid PROVIDER_TIMEOUT_SECONDS, using default 90s")
		timeoutSeconds = 90
	}
	return &GoogleStagingService{
		apiKey:      apiKey,
		clients:     clients,
		callTimeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

func (s *GoogleStagingService) Configured() bool {
	return s.apiKey != ""
}

func floatPointer(f float32) *float32 {
	return &f
}

// GenerateStagedImage submits the images followed by the text prompt and
// returns the first inline image of the first candidate. No retry: a failed
// call is terminal for the request.
func (s *GoogleStagingService) GenerateStagedImage(ctx context.Context, model LLMModelName, prompt string, images ...ProviderImage) (*GenerationResult, error) {
	if s.apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := s.clients.GetClient(ctx, s.apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize google ai client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	// [Image1, ..., ImageN, Text]
	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MIMEType,
				Data:     img.Data,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: prompt})

	result, err := client.Models.GenerateContent(ctx, model.String(), []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		CandidateCount: 1,
		Temperature:    floatPointer(1),
	})
	if err != nil {
		return nil, err
	}
	return extractGeneratedImage(result, model, prompt)
}

// extractGeneratedImage walks a GenerateContent response and pulls out the
// first inline image. Text parts seen before the image are kept as
// commentary; a response with text but no image becomes a TextOnlyError.
func extractGeneratedImage(result *genai.GenerateContentResponse, model LLMModelName, prompt string) (*GenerationResult, error) {
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		log.Printf("[GenAI] Prompt blocked: %s %s", result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
		return nil, fmt.Errorf("content blocked by provider: %s", result.PromptFeedback.BlockReasonMessage)
	}
	if len(result.Candidates) == 0 {
		log.Printf("[GenAI] No candidates in %s response", model.String())
		return nil, ErrEmptyResponse
	}

	var textContent string
	for _, cand := range result.Candidates {
		if cand.Content == nil || len(cand.Content.Parts) == 0 {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && strings.HasPrefix(part.InlineData.MIMEType, "image/") && len(part.InlineData.Data) > 0 {
				return &GenerationResult{
					Image: ProviderImage{
						Data:     part.InlineData.Data,
						MIMEType: part.InlineData.MIMEType,
					},
					Text:       textContent,
					PromptUsed: prompt,
				}, nil
			}
			if part.Text != "" && textContent == "" {
				textContent = part.Text
			}
		}
	}

	if textContent != "" {
		return nil, &TextOnlyError{Text: textContent}
	}
	log.Printf("[GenAI] %s response had candidates but no image or text parts", model.String())
	return nil, ErrEmptyResponse
}
