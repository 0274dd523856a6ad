package report

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// GeminiProvider enhances the deterministic report with a model-written
// executive summary. The call is bounded by a timeout and any failure falls
// back to the static report, so report generation can never fail.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	static  *StaticProvider
}

// NewGeminiProvider creates a Gemini-backed provider using the given API key.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   modelName,
		timeout: timeout,
		static:  NewStaticProvider(),
	}, nil
}

// Generate builds the deterministic report and then asks Gemini to rewrite the
// executive summary. On any error or timeout the deterministic report is
// returned unchanged.
func (p *GeminiProvider) Generate(ctx context.Context, in Input) (model.AnalysisReport, error) {
	rep, _ := p.static.Generate(ctx, in)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"You are a financial advisor writing for a compliance dashboard. "+
			"Write a single-paragraph executive summary for the portfolio %q "+
			"(type %s, value £%.2f, risk level %s) with %d open suitability breaches. "+
			"Plain prose only, no headings or lists.",
		in.Portfolio.Name,
		in.Portfolio.Type,
		in.Portfolio.Value,
		in.Portfolio.RiskLevel,
		rep.BreachAnalysis.CriticalBreaches,
	)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("Gemini analysis unavailable, using deterministic report: %v", err)
		return rep, nil
	}

	if text := strings.TrimSpace(resp.Text()); text != "" {
		rep.ExecutiveSummary = text
	}

	return rep, nil
}
