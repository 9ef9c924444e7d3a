package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Paths06/TalentNetwork/internal/models"
)

// stubExtractor returns a fixed suggestion set
type stubExtractor struct {
	suggestions []models.Suggestion
	err         error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) ([]models.Suggestion, error) {
	return s.suggestions, s.err
}

func TestProcess(t *testing.T) {
	t.Run("Deduplicates and sorts suggestions per label", func(t *testing.T) {
		service := NewExtractionService(&stubExtractor{
			suggestions: []models.Suggestion{
				{Label: models.LabelPerson, Text: "John Smith"},
				{Label: models.LabelOrg, Text: "Beta Fund"},
				{Label: models.LabelPerson, Text: "Alice Jones"},
				{Label: models.LabelPerson, Text: "John Smith"},
				{Label: models.LabelOrg, Text: "Acme Capital"},
				{Label: models.LabelPerson, Text: "  "},
			},
		})

		result, err := service.Process(context.Background(), "letter.txt", "some text")
		assert.NoError(t, err)
		assert.Equal(t, "letter.txt", result.FileName)
		assert.Equal(t, "some text", result.Text)
		assert.Equal(t, []string{"Alice Jones", "John Smith"}, result.People)
		assert.Equal(t, []string{"Acme Capital", "Beta Fund"}, result.Firms)
	})

	t.Run("Extraction error is propagated", func(t *testing.T) {
		service := NewExtractionService(&stubExtractor{err: assert.AnError})

		_, err := service.Process(context.Background(), "letter.txt", "some text")
		assert.Error(t, err)
	})

	t.Run("Single suggestions pre-fill the form", func(t *testing.T) {
		result := &models.ExtractionResult{
			People: []string{"John Smith"},
			Firms:  []string{"Acme Capital", "Beta Fund"},
		}

		assert.Equal(t, "John Smith", result.SinglePerson())
		assert.Equal(t, "", result.SingleFirm(), "more than one firm means no pre-fill")

		var empty *models.ExtractionResult
		assert.Equal(t, "", empty.SinglePerson(), "nil result pre-fills nothing")
	})
}

func TestHeuristicExtractor(t *testing.T) {
	extractor := NewHeuristicExtractor()

	t.Run("Classifies capitalized runs", func(t *testing.T) {
		text := "John Smith joined Acme Capital as head of equities. Jane Doe left BlueRock Group."

		suggestions, err := extractor.Extract(context.Background(), text)
		assert.NoError(t, err)

		byLabel := map[models.EntityLabel][]string{}
		for _, s := range suggestions {
			byLabel[s.Label] = append(byLabel[s.Label], s.Text)
		}

		assert.Contains(t, byLabel[models.LabelPerson], "John Smith")
		assert.Contains(t, byLabel[models.LabelPerson], "Jane Doe")
		assert.Contains(t, byLabel[models.LabelOrg], "Acme Capital")
		assert.Contains(t, byLabel[models.LabelOrg], "BlueRock Group")
	})

	t.Run("Ignores lone capitalized words", func(t *testing.T) {
		suggestions, err := extractor.Extract(context.Background(), "The market rallied on Monday.")
		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}

func TestNewsletterText(t *testing.T) {
	t.Run("Plain text passes through with invalid UTF-8 dropped", func(t *testing.T) {
		raw := append([]byte("John Smith "), 0xff, 0xfe)
		raw = append(raw, []byte("joined Acme.")...)

		text, err := NewsletterText("letter.txt", raw)
		assert.NoError(t, err)
		assert.Equal(t, "John Smith joined Acme.", text)
	})

	t.Run("HTML markup is stripped", func(t *testing.T) {
		raw := []byte(`<html><head><style>p { color: red; }</style></head>
<body><p>John Smith joined Acme Capital.</p><script>var tracking = 1;</script></body></html>`)

		text, err := NewsletterText("letter.html", raw)
		assert.NoError(t, err)
		assert.Contains(t, text, "John Smith joined Acme Capital.")
		assert.NotContains(t, text, "tracking")
		assert.NotContains(t, text, "color: red")
	})
}
