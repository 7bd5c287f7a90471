package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"stockmaster/config"
	"stockmaster/models"
)

const requestTimeout = 30 * time.Second

// baseURL is a variable so tests can point the client at a local server.
var baseURL = "https://generativelanguage.googleapis.com"

const (
	// FallbackEmpty is returned when the model answers with no usable text.
	FallbackEmpty = "Could not generate insights at this moment."
	// FallbackError is returned on any transport or API failure.
	FallbackError = "Error connecting to Gemini AI for analysis."
)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze asks the model for qualitative observations about the current
// snapshot and the most recent movements. It never fails from the caller's
// point of view: any problem collapses into a fixed fallback string, and the
// returned text is never parsed or fed back into application state.
func Analyze(ctx context.Context, items []models.InventoryItem, recent []models.Transaction) string {
	text, err := generate(ctx, buildPrompt(items, recent))
	if err != nil {
		log.Printf("Insight generation failed: %v", err)
		return FallbackError
	}
	if text == "" {
		return FallbackEmpty
	}
	return text
}

func buildPrompt(items []models.InventoryItem, recent []models.Transaction) string {
	inventoryJSON, _ := json.Marshal(items)
	recentJSON, _ := json.Marshal(recent)
	return fmt.Sprintf(`As an expert supply chain analyst for SR StockMaster, analyze this stock maintenance data and provide 3 actionable insights:
Inventory (Stock on Hand): %s
Recent Movement Logs: %s

Format your response in concise bullet points. Focus STRICTLY on:
1. Stock movement patterns (Which items move the most/least)
2. Low remaining stock alerts
3. Carry value (unit rate) fluctuations across recent stock-in logs

IMPORTANT: Do not mention total financial valuations or total stock money value. Focus only on Quantities and Carry Rates.`,
		inventoryJSON, recentJSON)
}

func generate(ctx context.Context, prompt string) (string, error) {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		return "", errors.New("GEMINI_API_KEY is not set")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, config.GeminiModel(), apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
