package askController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"simplifygold/utils"
	askValidator "simplifygold/validators/ask"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAskApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/ask", askValidator.Ask(), HandleAskQuery)
	return app
}

func postAsk(t *testing.T, app *fiber.App, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestSplitAdvice(t *testing.T) {
	fact, nudge := SplitAdvice("X. Would you like to proceed further?")
	assert.Equal(t, "X.", fact)
	assert.Equal(t, "Would you like to proceed further?", nudge)
}

func TestSplitAdviceWithoutMarkerUsesDefaultNudge(t *testing.T) {
	fact, nudge := SplitAdvice("Gold only ever goes up.")
	assert.Equal(t, "Gold only ever goes up.", fact)
	assert.Equal(t, defaultNudge, nudge)
}

func TestSplitAdviceSplitsOnFirstOccurrence(t *testing.T) {
	fact, nudge := SplitAdvice("A. Would you like to proceed now? Would you like to proceed later?")
	assert.Equal(t, "A.", fact)
	assert.Equal(t, "Would you like to proceed now? Would you like to proceed later?", nudge)
}

func TestHandleAskQueryMissingFields(t *testing.T) {
	app := newAskApp()

	for _, body := range []interface{}{
		map[string]interface{}{"userId": "user-1"},
		map[string]interface{}{"question": "Why gold?"},
		map[string]interface{}{},
	} {
		resp, parsed := postAsk(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Both userId and question are required", parsed["error"])
	}
}

func TestHandleAskQueryReturnsAIAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Gold holds value. Would you like to proceed with a small investment?"}]}}]}`))
	}))
	defer srv.Close()

	utils.Gemini = utils.NewGeminiClient("test-key", "gemini-1.5-flash", srv.URL)

	app := newAskApp()
	resp, parsed := postAsk(t, app, map[string]interface{}{"userId": "user-1", "question": "Why gold?"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ai", parsed["source"])
	assert.Equal(t, "Gold holds value.", parsed["answer"])
	assert.Equal(t, "Would you like to proceed with a small investment?", parsed["nudge"])
	assert.Equal(t, "Gold holds value. Would you like to proceed with a small investment?", parsed["fullResponse"])
}

func TestHandleAskQueryQuotaFallsBackToKnowledgeBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	utils.Gemini = utils.NewGeminiClient("test-key", "gemini-1.5-flash", srv.URL)

	app := newAskApp()
	question := "Is gold a safe option?"
	resp, parsed := postAsk(t, app, map[string]interface{}{"userId": "user-1", "question": question})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ai", parsed["source"])
	assert.Equal(t, utils.FallbackResponse(question), parsed["fullResponse"])
}

func TestHandleAskQueryInternalFailureReturnsSystemFallback(t *testing.T) {
	// A nil client makes the handler panic, which the recover converts
	// into the canned payload. Never a 5xx on this endpoint.
	utils.Gemini = nil

	app := newAskApp()
	resp, parsed := postAsk(t, app, map[string]interface{}{"userId": "user-1", "question": "Why gold?"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "system_fallback", parsed["source"])
	assert.Equal(t, systemFallbackAnswer, parsed["answer"])
	assert.Equal(t, defaultNudge, parsed["nudge"])
}
