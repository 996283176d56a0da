// Package aigen implements the generative-model path of the pipeline using
// Gemini. Its output is checked against the document schema before being
// returned, so a confabulated shape falls back to the deterministic path
// instead of reaching the renderer.
package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"siteforge/internal/sitespec"
)

// GeminiGenerator asks a Gemini model for a complete site intent document.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates the generator. The API key must be non-empty;
// the pipeline treats a construction error as "AI unavailable".
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: modelName}, nil
}

// GenerateSiteIntent implements pipeline.Generator.
func (g *GeminiGenerator) GenerateSiteIntent(ctx context.Context, rec sitespec.IntakeRecord) (*sitespec.SiteIntentDocument, error) {
	prompt := buildPrompt(rec)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}
	text := stripCodeFences(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	var doc sitespec.SiteIntentDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("gemini response is not a valid document: %w", err)
	}

	doc.SessionID = rec.SessionID
	doc.SiteType = rec.SiteType
	doc.ConversionGoal = rec.Goal
	doc.Personality = rec.Personality
	doc.BusinessName = rec.BusinessName
	doc.Brand = rec.Brand
	doc.Metadata = sitespec.Metadata{
		GeneratedAt: time.Now().UTC(),
		Method:      sitespec.MethodAI,
	}

	if err := sitespec.ValidateSchema(&doc); err != nil {
		return nil, fmt.Errorf("gemini document rejected: %w", err)
	}
	return &doc, nil
}

func buildPrompt(rec sitespec.IntakeRecord) string {
	var sb strings.Builder
	sb.WriteString("You are a website content planner. Produce a single JSON object describing a one-page site.\n")
	sb.WriteString("Respond with JSON only, no prose and no markdown fences.\n\n")
	sb.WriteString("The JSON must have this shape:\n")
	sb.WriteString(`{"sessionId":"","siteType":"","conversionGoal":"","personalityVector":[0.5,0.5,0.5,0.5,0.5,0.5],"businessName":"","tagline":"","pages":[{"slug":"home","title":"","purpose":"landing","components":[{"componentId":"navigation","variant":"standard","order":0,"content":{"logoText":""}}]}],"metadata":{"generatedAt":"2024-01-01T00:00:00Z","method":"ai"}}`)
	sb.WriteString("\n\nComponent ids are drawn from: navigation, hero-centered, hero-split, content-about, features-grid, content-stats, commerce-services, content-team, trust-logos, content-testimonials, content-accordion, cta-banner, contact-form, footer.\n")
	sb.WriteString("Order values must start at 0 and increase by 1. The nav and footer logoText must equal the business name.\n\n")
	fmt.Fprintf(&sb, "Business name: %s\n", rec.BusinessName)
	fmt.Fprintf(&sb, "Site type: %s\n", rec.SiteType)
	fmt.Fprintf(&sb, "Conversion goal: %s\n", rec.Goal)
	fmt.Fprintf(&sb, "Business description: %s\n", rec.Description)
	fmt.Fprintf(&sb, "Personality vector (minimal-rich, playful-serious, warm-cool, light-bold, classic-modern, calm-dynamic): %v\n", []float64(rec.Personality))
	if rec.Brand.VoiceProfile != "" {
		fmt.Fprintf(&sb, "Voice profile: %s\n", rec.Brand.VoiceProfile)
	}
	if len(rec.Brand.AntiReferences) > 0 {
		fmt.Fprintf(&sb, "Avoid these tones: %s\n", strings.Join(rec.Brand.AntiReferences, ", "))
	}
	return sb.String()
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if i := strings.Index(text, "\n"); i >= 0 {
			text = text[i+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
