package utils

import (
	"strings"
)

// fallbackEntry pairs a keyword set with a canned answer
type fallbackEntry struct {
	keywords []string
	response string
}

// fallbackResponses is checked in order; the first entry with any keyword
// present in the question wins.
var fallbackResponses = []fallbackEntry{
	{
		keywords: []string{"good", "investment", "should", "invest", "now", "today", "current"},
		response: "Gold has historically been a reliable store of value and hedge against inflation. In the current economic climate with market volatility, gold remains an attractive option for portfolio diversification. You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?",
	},
	{
		keywords: []string{"price", "rates", "cost", "expensive", "cheap"},
		response: "Gold prices fluctuate based on various economic factors, but it generally maintains its value over time. Digital gold eliminates storage and purity concerns while offering fractional ownership. You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?",
	},
	{
		keywords: []string{"safe", "secure", "risk", "risky"},
		response: "Gold is considered one of the safest investment options, especially during uncertain economic times. It acts as a hedge against inflation and currency devaluation. Digital gold through Simplify Money offers the same benefits with added convenience and security. You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?",
	},
	{
		keywords: []string{"future", "long", "term", "2025", "2026"},
		response: "Gold has shown consistent long-term growth and is expected to remain a valuable asset in the future. With increasing digitalization, digital gold investments offer modern convenience with traditional security. You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?",
	},
	{
		keywords: []string{"digital", "physical", "difference", "better"},
		response: "Digital gold offers the same value as physical gold but without storage hassles, making charges, or purity concerns. It's backed by actual gold reserves and can be converted to physical form when needed. You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?",
	},
}

// defaultFallbackResponse answers questions that match no keyword set
const defaultFallbackResponse = "Gold is a precious metal that has been valued for centuries as a store of wealth and hedge against economic uncertainty. It's particularly attractive during periods of inflation and market volatility. You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?"

// FallbackResponse picks a canned answer for the question from the fixed
// knowledge base. Pure function, never fails.
func FallbackResponse(question string) string {
	questionLower := strings.ToLower(question)

	for _, fallback := range fallbackResponses {
		matchCount := 0
		for _, keyword := range fallback.keywords {
			if strings.Contains(questionLower, keyword) {
				matchCount++
			}
		}

		if matchCount > 0 {
			return fallback.response
		}
	}

	return defaultFallbackResponse
}
