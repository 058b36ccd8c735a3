package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wanderguard/internal/guide"
	"wanderguard/internal/models/request_models"
)

// GuideClientInterface is the AI collaborator: it returns one freeform guide
// text (cut into sections downstream) plus the grounding citations.
type GuideClientInterface interface {
	GenerateGuide(ctx context.Context, params request_models.GenerateGuideRequest) (string, []guide.GroundingSource, error)
}

// Plan-mode model routing. Fast favors latency, deep favors depth.
const (
	modelFast     = "gemini-flash-lite-latest"
	modelDetailed = "gemini-2.5-flash"
	modelDeep     = "gemini-3-pro-preview"
)

type GeminiGuideClient struct {
	client *genai.Client
}

func NewGeminiGuideClient(ctx context.Context, apiKey string) (GuideClientInterface, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGuideClient{client: client}, nil
}

func (c *GeminiGuideClient) GenerateGuide(ctx context.Context, params request_models.GenerateGuideRequest) (string, []guide.GroundingSource, error) {
	model := c.client.GenerativeModel(modelForPlanMode(params.PlanMode))
	if params.PlanMode == "deep" {
		model.SetMaxOutputTokens(32768)
	}

	prompt := BuildGuidePrompt(params)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil, fmt.Errorf("no content generated")
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(fmt.Sprintf("%v", part))
	}

	var sources []guide.GroundingSource
	if candidate.CitationMetadata != nil {
		for _, src := range candidate.CitationMetadata.CitationSources {
			if src.URI != nil {
				sources = append(sources, guide.GroundingSource{URI: *src.URI})
			}
		}
	}

	return text.String(), sources, nil
}

func modelForPlanMode(mode string) string {
	switch mode {
	case "fast":
		return modelFast
	case "deep":
		return modelDeep
	default:
		return modelDetailed
	}
}

// BuildGuidePrompt writes the guide request prompt. The section headings here
// are the exact keywords the section splitter cuts on, and the flight table
// columns match the codec's fixed five-column contract.
func BuildGuidePrompt(params request_models.GenerateGuideRequest) string {
	days := TripDays(params.CheckIn, params.CheckOut)

	return fmt.Sprintf(`
Act as a travel expert. Create a comprehensive travel guide for a trip from %s to %s.
Dates: From %s to %s (%d days).
Style: %s, Travelers: %d, Budget: %s %s.

CRITICAL SECTIONS TO INCLUDE:
1. "ITINERARY": Day-by-day plan with specific activities.
2. "FLIGHTS & ACCOMMODATIONS":
   - MUST include a "FLIGHT PRICE COMPARISON" section with a Markdown table.
   - The table must compare at least 3 major airlines relevant to the route.
   - Columns: Airline, Est. Price (%s), Duration, Transit, Booking Link.
   - IMPORTANT for "Transit" column: If the flight is direct, state 'Direct'. If there are layovers, specify the city and the duration of the layover (e.g., '1 stop in Dubai, 2h 30m').
   - The "Booking Link" column MUST contain a functional Markdown link to the airline's official booking page (e.g., [Book on AirlineName](https://www.airline.com)).
   - Include 2-3 specific accommodation recommendations with price ranges and direct booking links.
3. "SAFETY AND CRIME": Relevant alerts.
4. "HEALTH INFORMATION": Vaccinations or health tips.
5. "ENVIRONMENTAL AND DISASTERS": Weather and local conditions.
6. "TRAVEL TIPS": Useful hacks.

Note: Use real-time data where possible for the %s travel period. Use grounding tools to find the most accurate URLs.
`,
		params.Origin, params.Destination,
		params.CheckIn, params.CheckOut, days,
		params.TravelerType, params.Person, params.Budget, params.Currency,
		params.Currency,
		params.CheckIn,
	)
}
