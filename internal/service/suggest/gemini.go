package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider asks a Gemini model for a placement, constrained to a JSON
// response schema so the answer is machine-parseable.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiProvider creates a Gemini-backed placement provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// SuggestPlacement prompts the model with the flattened folder projection
// and label catalog and decodes its structured answer.
func (p *GeminiProvider) SuggestPlacement(ctx context.Context, pc *PlacementContext) (*Placement, error) {
	prompt, err := buildPrompt(pc)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"suggested_folder_id": {Type: genai.TypeString},
				"suggested_label_id":  {Type: genai.TypeString},
			},
			Required: []string{"suggested_folder_id", "suggested_label_id"},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini placement request: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini placement request: empty response")
	}

	var placement Placement
	if err := json.Unmarshal([]byte(text), &placement); err != nil {
		return nil, fmt.Errorf("decode gemini placement response: %w", err)
	}

	p.logger.Debug("gemini placement suggested",
		"file_name", pc.FileName,
		"folder_id", placement.FolderID,
		"label_id", placement.LabelID,
	)
	return &placement, nil
}

// buildPrompt renders the instruction with the folder projection and label
// catalog as JSON context. Only ids from these lists are acceptable answers.
func buildPrompt(pc *PlacementContext) (string, error) {
	folderJSON, err := json.MarshalIndent(pc.Folders, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode folder projection: %w", err)
	}

	type labelEntry struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	entries := make([]labelEntry, len(pc.Labels))
	for i, l := range pc.Labels {
		entries[i] = labelEntry{ID: l.ID, Name: l.Name, Category: string(l.Category)}
	}
	labelJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode label catalog: %w", err)
	}

	return fmt.Sprintf(`You are an expert file organization assistant for a fruit import/export company called "Fruitstars".
Your task is to suggest the best folder and label for a new file.

File details:
- Name: %q
- Type: %q

Here are the available folders. Only choose a folder from this list:
%s

Here are the available labels. Only choose a label from this list:
%s

Analyze the file name and type. Based on common document patterns in a fruit import/export business, determine the most appropriate folder and label.
- If the file is a certificate like "GlobalGap", it belongs in a specific 'Supplier' folder.
- If the file is a shipping document like "Bill of Lading" or involves an invoice number, it belongs in a specific 'Shipments' sub-folder (dossier).
- If the file is a company profile, it could be for a 'Client' or 'Supplier'.
- If no specific label fits, use the 'Other' label.

Respond with a single, clean JSON object with the keys "suggested_folder_id" and "suggested_label_id".`,
		pc.FileName, pc.FileType, folderJSON, labelJSON), nil
}
