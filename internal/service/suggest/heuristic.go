package suggest

import (
	"context"
	"strings"

	"fruitstars/internal/labels"
)

// HeuristicProvider is a deterministic fallback used when no Gemini API key
// is configured (local development, tests). It scores labels and folders by
// word overlap with the file name and falls back to the general "Other"
// label when nothing matches.
type HeuristicProvider struct{}

// NewHeuristicProvider creates the keyless fallback provider.
func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{}
}

// SuggestPlacement picks the label and folder whose names share the most
// words with the file name. Ties resolve to the earliest candidate, so the
// result is stable for a given context.
func (p *HeuristicProvider) SuggestPlacement(ctx context.Context, pc *PlacementContext) (*Placement, error) {
	words := tokenize(pc.FileName)

	placement := &Placement{LabelID: labels.OtherLabelID}

	bestLabel := 0
	for _, label := range pc.Labels {
		score := overlap(words, tokenize(label.Name))
		if score > bestLabel {
			bestLabel = score
			placement.LabelID = label.ID
		}
	}

	bestFolder := 0
	for _, folder := range pc.Folders {
		score := overlap(words, tokenize(folder.Path))
		if score > bestFolder {
			bestFolder = score
			placement.FolderID = folder.ID
		}
	}

	return placement, nil
}

func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		switch r {
		case ' ', '.', '_', '-', '/', '(', ')', '>':
			return true
		}
		return false
	}) {
		if len(word) >= 3 {
			tokens[word] = true
		}
	}
	return tokens
}

func overlap(a, b map[string]bool) int {
	count := 0
	for word := range b {
		if a[word] {
			count++
		}
	}
	return count
}
