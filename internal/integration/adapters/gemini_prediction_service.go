// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// geminiStrategyName identifies predictions produced by this strategy.
const geminiStrategyName = "gemini"

// GeminiPredictionService implements the purchase prediction strategy using
// Google Gemini. It is an optional alternative to the local interval strategy
// for households with irregular, seasonal buying patterns.
type GeminiPredictionService struct {
	apiKey    string
	modelName string
	now       func() time.Time
}

// NewGeminiPredictionService creates a new Gemini prediction service instance.
func NewGeminiPredictionService(apiKey string) *GeminiPredictionService {
	return &GeminiPredictionService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
		now:       time.Now,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiPredictionService) IsAvailable() bool {
	return s.apiKey != ""
}

// PredictNextPurchase asks Gemini for the most likely next purchase date
// given the item's purchase history.
func (s *GeminiPredictionService) PredictNextPurchase(ctx context.Context, itemName, category string, history []*entity.Purchase) (*entity.PurchasePrediction, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(itemName, category, history)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	prediction, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return prediction, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiPredictionService) buildPrompt(itemName, category string, history []*entity.Purchase) string {
	var sb strings.Builder

	sb.WriteString("You are a grocery replenishment forecaster. Given a household's purchase history for a single item, predict the most likely date of the next purchase.\n\n")
	sb.WriteString(fmt.Sprintf("Item: %s\nCategory: %s\nPurchases (chronological):\n", itemName, category))

	for _, p := range history {
		sb.WriteString(fmt.Sprintf("- %s: quantity %.2f at %s\n", p.Date.Format("2006-01-02"), p.Quantity, p.StoreName))
	}

	sb.WriteString("\nRespond with a single JSON object:\n")
	sb.WriteString(`{ "predicted_date": "YYYY-MM-DD", "confidence": 0.0-1.0 }`)
	sb.WriteString("\n\nReturn only the JSON object, no additional text.\n")

	return sb.String()
}

// geminiPrediction represents the raw response from Gemini.
type geminiPrediction struct {
	PredictedDate string  `json:"predicted_date"`
	Confidence    float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into a PurchasePrediction.
func (s *GeminiPredictionService) parseResponse(resp *genai.GenerateContentResponse) (*entity.PurchasePrediction, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiPrediction
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	predicted, err := time.Parse("2006-01-02", raw.PredictedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid predicted date %q: %w", raw.PredictedDate, err)
	}

	confidence := raw.Confidence
	if confidence < 0 || confidence > 1 {
		confidence = 0.5
	}

	return &entity.PurchasePrediction{
		PredictedDate:     predicted,
		DaysUntilPurchase: wholeDaysUntil(s.now(), predicted),
		Confidence:        confidence,
		Strategy:          geminiStrategyName,
	}, nil
}
