package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"internhub/internal/config"
)

const analysisPrompt = `Analyze this resume and return ONLY this JSON structure (no other text):

{"score": [number 0-100], "strengths": ["strength1", "strength2"], "weaknesses": ["weakness1", "weakness2"], "suggestions": ["suggestion1", "suggestion2"], "keywords": ["keyword1", "keyword2"]}

Resume text:
%s`

// GeminiAnalyzer asks a Gemini model for the analysis and falls back
// to the heuristic analyzer on any failure, so callers always get a
// usable result.
type GeminiAnalyzer struct {
	client   *genai.Client
	model    string
	fallback Analyzer
	logger   *log.Logger
}

// NewGeminiAnalyzer returns the fallback analyzer alone when no API
// key is configured.
func NewGeminiAnalyzer(ctx context.Context, cfg config.GeminiConfig, logger *log.Logger) Analyzer {
	fallback := NewHeuristicAnalyzer()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return fallback
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		if logger != nil {
			logger.Printf("[Analyzer] Gemini client init failed, using heuristic analyzer: %v", err)
		}
		return fallback
	}

	return &GeminiAnalyzer{
		client:   client,
		model:    cfg.Model,
		fallback: fallback,
		logger:   logger,
	}
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, resumeText string) (Analysis, error) {
	prompt := fmt.Sprintf(analysisPrompt, truncate(resumeText, maxResumeChars))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		if g.logger != nil {
			g.logger.Printf("[Analyzer] Gemini call failed, using heuristic analyzer: %v", err)
		}
		return g.fallback.Analyze(ctx, resumeText)
	}

	analysis, err := parseAnalysis(resp.Text())
	if err != nil {
		if g.logger != nil {
			g.logger.Printf("[Analyzer] unparseable model response, using heuristic analyzer: %v", err)
		}
		return g.fallback.Analyze(ctx, resumeText)
	}
	return analysis, nil
}

// parseAnalysis extracts the JSON object from a model reply that may
// be wrapped in markdown fences or prose.
func parseAnalysis(raw string) (Analysis, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return Analysis{}, fmt.Errorf("no JSON object in model response")
	}

	var a Analysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &a); err != nil {
		return Analysis{}, fmt.Errorf("decode model response: %w", err)
	}
	return sanitize(a), nil
}
