package askController

import (
	"log"
	"strings"

	"simplifygold/utils"
	askValidator "simplifygold/validators/ask"

	"github.com/gofiber/fiber/v2"
)

const nudgeMarker = "Would you like to proceed"

const defaultNudge = "You can start investing in digital gold with Simplify Money for as little as ₹10. Would you like to proceed with a small investment?"

const systemFallbackAnswer = "I'm currently experiencing high demand, but I can still help! Gold is a time-tested investment that serves as a hedge against inflation and economic uncertainty. It's particularly valuable for portfolio diversification."

// HandleAskQuery answers a gold investment question. The endpoint never
// returns a 5xx: any failure past validation is converted into the canned
// system fallback payload.
func HandleAskQuery(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Ask API error: %v", r)
			err = systemFallbackResponse(c)
		}
	}()

	reqData, ok := c.Locals("validatedAsk").(*askValidator.AskRequest)
	if !ok {
		return systemFallbackResponse(c)
	}

	// Get AI response from Gemini (with fallback handling)
	advice := utils.Gemini.GetGoldInvestmentAdvice(c.Context(), reqData.Question)

	fact, nudge := SplitAdvice(advice)

	return c.JSON(fiber.Map{
		"answer":       fact,
		"nudge":        nudge,
		"fullResponse": advice,
		"source":       "ai",
	})
}

// SplitAdvice separates the advice text into its fact and nudge parts on
// the first occurrence of the call-to-action phrase. When the phrase is
// missing, the fixed default nudge is substituted.
func SplitAdvice(advice string) (fact, nudge string) {
	before, after, found := strings.Cut(advice, nudgeMarker)

	fact = strings.TrimSpace(before)

	if found {
		nudge = strings.TrimSpace(nudgeMarker + after)
	} else {
		nudge = defaultNudge
	}

	return fact, nudge
}

// systemFallbackResponse is the catch-all payload; to the client it is
// indistinguishable from a knowledge-base answer
func systemFallbackResponse(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"answer":       systemFallbackAnswer,
		"nudge":        defaultNudge,
		"fullResponse": systemFallbackAnswer + " " + defaultNudge,
		"source":       "system_fallback",
	})
}
