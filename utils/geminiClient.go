package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"simplifygold/config"

	"github.com/go-resty/resty/v2"
)

// minCallInterval is the minimum spacing between Gemini calls. The free
// tier throttles aggressively, so we self-throttle below its quota.
const minCallInterval = 2000 * time.Millisecond

const goldAdvicePrompt = `
You are an AI assistant for Simplify Money, a digital gold investment platform.

User question: "%s"

Please provide:
1. A helpful fact or insight about gold investments (2-3 sentences)
2. A gentle nudge to invest in digital gold through Simplify Money

Keep the response professional, informative, and encouraging about gold investments.
Focus on gold as a safe investment option, hedge against inflation, portfolio diversification, etc.

Format your response as a natural conversation, ending with something like:
"You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?"
`

// GeminiClient wraps the Gemini generateContent REST endpoint. Every
// failure is absorbed into a canned fallback answer; callers never see an
// error from GetGoldInvestmentAdvice.
type GeminiClient struct {
	http    *resty.Client
	apiKey  string
	model   string
	limiter *RateLimiter
}

// Gemini is the global advice client instance
var Gemini *GeminiClient

// InitGemini builds the global client from the loaded configuration
func InitGemini() {
	Gemini = NewGeminiClient(config.AppConfig.GeminiApiKey, config.AppConfig.GeminiModel, config.AppConfig.GeminiApiUrl)
}

func NewGeminiClient(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
		apiKey:  apiKey,
		model:   model,
		limiter: NewRateLimiter(minCallInterval),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *geminiError `json:"error"`
}

// generateResponse issues one generateContent call. A quota/rate-limit
// failure returns ("", nil) as a signal to use the fallback table; any
// other failure returns an error.
func (g *GeminiClient) generateResponse(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var result geminiResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		log.Printf("Gemini API error: %d %s", resp.StatusCode(), resp.String())

		if isQuotaError(resp.StatusCode(), result.Error) {
			log.Println("Rate limit detected, using fallback response")
			return "", nil // Signal to use fallback
		}

		return "", fmt.Errorf("failed to generate AI response: %s", resp.Status())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from Gemini API")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// isQuotaError reports whether a failed call was quota/rate-limit
// exhaustion rather than a hard error
func isQuotaError(statusCode int, apiErr *geminiError) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	if apiErr == nil {
		return false
	}
	message := strings.ToLower(apiErr.Message)
	return strings.Contains(message, "quota") || strings.Contains(message, "rate")
}

// GetGoldInvestmentAdvice returns advice text for the user's question. It
// never fails: when Gemini is unavailable or exhausted, the answer comes
// from the fallback knowledge base instead.
func (g *GeminiClient) GetGoldInvestmentAdvice(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(goldAdvicePrompt, question)

	aiResponse, err := g.generateResponse(ctx, prompt)
	if err != nil {
		log.Printf("Gemini API unavailable, using fallback response: %v", err)
		return FallbackResponse(question)
	}

	// Empty response means the rate limit kicked in
	if aiResponse == "" {
		log.Println("Using fallback response due to API rate limits")
		return FallbackResponse(question)
	}

	return aiResponse
}
