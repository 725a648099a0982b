package responses

import (
	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
)

// GenerateResponse is the body of a successful generation call: the composed
// batch plus the persisted record id.
type GenerateResponse struct {
	ID             string                      `json:"id"`
	Images         []thumbnail.ImageDescriptor `json:"images"`
	GenerationTime int                         `json:"generationTime"`
	SelectedModel  thumbnail.Model             `json:"selectedModel"`
	Reasoning      string                      `json:"reasoning"`
}

// BuildGenerateResponse creates the response from the persisted record.
func BuildGenerateResponse(record *thumbnail.GenerationRequest) *GenerateResponse {
	return &GenerateResponse{
		ID:             record.ID,
		Images:         record.GeneratedImages,
		GenerationTime: record.GenerationTime,
		SelectedModel:  record.SelectedModel,
		Reasoning:      record.ModelReasoning,
	}
}
