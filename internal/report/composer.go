package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"reporter-backend/internal/apperr"
)

// PatientSummary is the slice of patient data embedded into the prompt.
type PatientSummary struct {
	ID      uint   `json:"id"`
	Dossier string `json:"dossier"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
}

// Composer produces the report text for a detection summary.
type Composer interface {
	Compose(ctx context.Context, detections map[string]int, patient PatientSummary) (string, error)
}

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiComposer requests a single completion turn from the Google
// generative-language REST API. One attempt, no retry.
type GeminiComposer struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewGeminiComposer(apiKey, model string) *GeminiComposer {
	return &GeminiComposer{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		Client:  http.DefaultClient,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
	SafetySettings    []safetySetting  `json:"safetySettings"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiComposer) Compose(ctx context.Context, detections map[string]int, patient PatientSummary) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: buildSystemPrompt(detections, patient)}}},
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: "Hey man, what do you see in this image?"}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.6,
			TopP:            0.95,
			TopK:            64,
			MaxOutputTokens: 4096,
		},
		SafetySettings: []safetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", apperr.External("generation service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.External(fmt.Sprintf("generation service returned status %d", resp.StatusCode), nil)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperr.External("decode generation response", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", apperr.External("generation service returned no candidates", nil)
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// buildSystemPrompt embeds the detection mapping and patient summary
// into the instruction. Labels are sorted so the prompt is stable for a
// given mapping.
func buildSystemPrompt(detections map[string]int, patient PatientSummary) string {
	labels := make([]string, 0, len(detections))
	for label := range detections {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, fmt.Sprintf("'%s': %d", label, detections[label]))
	}

	return fmt.Sprintf(`You are a hilarious chatbot that helps to identify objects in an image.
A list of objects related to a patient will be provided.
Use the information to say what you can see in the image in a funny way.

** "OBJECTS": {%s}
** "PATIENT": {'id': %d, 'dossier': '%s', 'name': '%s', 'surname': '%s', 'gender': '%s', 'age': %d}`,
		strings.Join(pairs, ", "),
		patient.ID, patient.Dossier, patient.Name, patient.Surname, patient.Gender, patient.Age)
}

var _ Composer = (*GeminiComposer)(nil)
