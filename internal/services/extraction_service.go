package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Paths06/TalentNetwork/internal/models"
)

// EntityExtractor finds PERSON and ORG entities in newsletter text
type EntityExtractor interface {
	Extract(ctx context.Context, text string) ([]models.Suggestion, error)
}

// ExtractionService turns an uploaded newsletter into an ExtractionResult
type ExtractionService struct {
	extractor EntityExtractor
}

// NewExtractionService creates a new extraction service
func NewExtractionService(extractor EntityExtractor) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
	}
}

// Process runs entity extraction over newsletter text and builds the result.
// Suggestions are deduplicated per label and sorted alphabetically.
func (s *ExtractionService) Process(ctx context.Context, fileName, text string) (*models.ExtractionResult, error) {
	suggestions, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	return &models.ExtractionResult{
		FileName:  fileName,
		Text:      text,
		People:    collectLabel(suggestions, models.LabelPerson),
		Firms:     collectLabel(suggestions, models.LabelOrg),
		CreatedAt: time.Now(),
	}, nil
}

// NewsletterText decodes an uploaded newsletter file into plain text.
// HTML files are stripped of markup; text files have invalid UTF-8 dropped
// rather than rejected.
func NewsletterText(fileName string, raw []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == ".html" || ext == ".htm" {
		return htmlToText(raw)
	}
	return strings.ToValidUTF8(string(raw), ""), nil
}

// htmlToText extracts the visible text of an HTML document
func htmlToText(raw []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})
	if len(parts) == 0 {
		parts = append(parts, doc.Text())
	}

	text := strings.Join(parts, "\n")
	return strings.TrimSpace(text), nil
}

// collectLabel gathers unique suggestion texts for one label, sorted ascending
func collectLabel(suggestions []models.Suggestion, label models.EntityLabel) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, sug := range suggestions {
		text := strings.TrimSpace(sug.Text)
		if sug.Label != label || text == "" || seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, text)
	}
	sort.Strings(out)
	return out
}

// GeminiExtractor asks a Gemini model for named entities in JSON mode
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates an extractor backed by the Gemini API
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  model,
	}, nil
}

const extractionPrompt = `You are a named entity recognizer for financial industry newsletters.
Find every person name and every organization name in the text below.
Respond with a JSON array only, one object per entity:
[{"label": "PERSON", "text": "..."}, {"label": "ORG", "text": "..."}]
Use label PERSON for people and ORG for firms. Do not invent entities.

Text:
%s`

// Extract sends the newsletter text to Gemini and parses the JSON response.
// Entities with labels other than PERSON/ORG are discarded.
func (g *GeminiExtractor) Extract(ctx context.Context, text string) ([]models.Suggestion, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	payload, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var entities []models.Suggestion
	if err := json.Unmarshal([]byte(cleanJSONBlock(payload)), &entities); err != nil {
		return nil, fmt.Errorf("parse entity response: %w", err)
	}

	out := make([]models.Suggestion, 0, len(entities))
	for _, entity := range entities {
		if entity.Label == models.LabelPerson || entity.Label == models.LabelOrg {
			out = append(out, entity)
		}
	}
	return out, nil
}

// Close releases resources held by the Gemini client
func (g *GeminiExtractor) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// HeuristicExtractor is the fallback when no Gemini API key is configured.
// It collects runs of capitalized words and labels a run ORG when it contains
// a company keyword, PERSON otherwise. Good enough for suggestions the user
// reviews by hand.
type HeuristicExtractor struct{}

// NewHeuristicExtractor creates a new heuristic extractor
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

var orgKeywords = []string{
	"Capital", "Partners", "Inc", "LLC", "Ltd", "Group", "Fund", "Funds",
	"Bank", "Management", "Advisors", "Advisers", "Holdings", "Securities",
	"Asset", "Investments", "Corp", "Company",
}

// Extract scans for capitalized token runs and classifies each run
func (h *HeuristicExtractor) Extract(_ context.Context, text string) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion

	var run []string
	flush := func() {
		if len(run) >= 2 {
			suggestions = append(suggestions, classifyRun(strings.Join(run, " ")))
		}
		run = nil
	}

	for _, token := range strings.Fields(text) {
		word := strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if word != "" && unicode.IsUpper([]rune(word)[0]) {
			run = append(run, word)
			// Trailing punctuation on the original token ends the run
			if strings.IndexFunc(token, unicode.IsPunct) > 0 {
				flush()
			}
			continue
		}
		flush()
	}
	flush()

	return suggestions, nil
}

// classifyRun labels a capitalized run as ORG or PERSON
func classifyRun(run string) models.Suggestion {
	for _, keyword := range orgKeywords {
		for _, word := range strings.Fields(run) {
			if word == keyword {
				return models.Suggestion{Label: models.LabelOrg, Text: run}
			}
		}
	}
	return models.Suggestion{Label: models.LabelPerson, Text: run}
}
