package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Analyzer calls a hosted text model (AWS Bedrock) to classify a brand
// and suggest a program shape. It is a pass-through: the simulation
// engine only ever sees the decoded Analysis struct, never the model.
type Analyzer struct {
	client  *bedrockruntime.Client
	modelID string
	region  string
}

// bedrockRequest is the Anthropic-on-Bedrock invoke payload.
type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
	Temperature      float64          `json:"temperature,omitempty"`
}

type bedrockMessage struct {
	Role    string                `json:"role"`
	Content []bedrockContentBlock `json:"content"`
}

type bedrockContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

const analyzerSystemPrompt = `You are a loyalty program consultant for e-commerce brands.
Given a brand, respond with ONLY a JSON object with these fields:
industry (one of: fashion, beauty, food, health, electronics, sports, home, other),
positioning (short string), estimated_aov (number, euros),
estimated_margin (fraction between 0 and 1),
recommended_program (one of: luxury, mid, mass, cashback),
suggested_tier_names (array of exactly 3 strings, entry tier first),
suggested_missions (array of strings), brand_tone (short string),
brand_name, brand_description, brand_logo (empty string if unknown).`

// NewAnalyzer creates a Bedrock-backed brand analyzer.
func NewAnalyzer(modelID, region string) (*Analyzer, error) {
	ctx := context.Background()
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if modelID == "" {
		modelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	}

	a := &Analyzer{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
		region:  region,
	}
	log.Printf("BrandAnalyzer: initialized with model=%s, region=%s", modelID, region)
	return a, nil
}

// Analyze asks the model to classify the brand and decodes its JSON
// answer into a validated Analysis.
func (a *Analyzer) Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	userMessage := fmt.Sprintf("Brand: %s\nDescription: %s", req.BrandName, req.Description)
	if req.WebsiteURL != "" {
		userMessage += "\nWebsite: " + req.WebsiteURL
	}

	payload := bedrockRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        1000,
		System:           analyzerSystemPrompt,
		Messages: []bedrockMessage{
			{Role: "user", Content: []bedrockContentBlock{{Type: "text", Text: userMessage}}},
		},
		Temperature: 0.3,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(a.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("Bedrock API error: %w", err)
	}

	var response bedrockResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	var text string
	for _, block := range response.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	analysis, err := ParseAnalysis(text)
	if err != nil {
		return nil, err
	}
	if analysis.BrandName == "" {
		analysis.BrandName = req.BrandName
	}
	return analysis, nil
}

// ParseAnalysis extracts the JSON object from the model's text answer
// and fills defaults for anything the model left out, so downstream
// preset derivation always sees a complete shape.
func ParseAnalysis(text string) (*Analysis, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	switch analysis.RecommendedProgram {
	case "luxury", "mid", "mass", "cashback":
	default:
		analysis.RecommendedProgram = "mid"
	}
	if analysis.Industry == "" {
		analysis.Industry = "other"
	}
	if analysis.EstimatedAOV < 0 {
		analysis.EstimatedAOV = 0
	}
	if analysis.EstimatedMargin < 0 || analysis.EstimatedMargin > 1 {
		analysis.EstimatedMargin = 0.5
	}

	return &analysis, nil
}
