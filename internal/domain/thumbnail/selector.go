package thumbnail

import "strings"

// Keyword sets checked by SelectModel, in priority order. The categories
// overlap, so the ordering is part of the contract: artistic wins over
// photorealistic, which wins over technical.
var (
	artisticKeywords  = []string{"artistic", "art", "creative", "abstract", "painting", "illustration"}
	photoKeywords     = []string{"photorealistic", "photo", "realistic", "portrait", "landscape"}
	technicalKeywords = []string{"typography", "text", "logo", "tech", "geometric"}
)

// SelectModel picks a generation model for the given prompt and style using
// keyword-substring rules. It is deterministic, never fails, and performs no
// I/O. The aspect ratio is accepted for interface stability but does not
// influence the choice.
func SelectModel(prompt, style, aspectRatio string) ModelSelection {
	_ = aspectRatio
	lowerPrompt := strings.ToLower(prompt)
	lowerStyle := strings.ToLower(style)

	switch {
	case matchesAny(lowerStyle, lowerPrompt, artisticKeywords):
		return ModelSelection{
			SelectedModel: ModelFlux,
			Reasoning:     "Selected Flux for its excellent artistic and creative capabilities",
			Confidence:    0.9,
		}
	case matchesAny(lowerStyle, lowerPrompt, photoKeywords):
		return ModelSelection{
			SelectedModel: ModelSDXL,
			Reasoning:     "Selected SDXL for high-quality photorealistic results",
			Confidence:    0.85,
		}
	case matchesAny(lowerStyle, lowerPrompt, technicalKeywords):
		return ModelSelection{
			SelectedModel: ModelStableDiffusion,
			Reasoning:     "Selected Stable Diffusion for technical and text-focused content",
			Confidence:    0.8,
		}
	default:
		return ModelSelection{
			SelectedModel: ModelStableDiffusion,
			Reasoning:     "Selected Stable Diffusion as the most reliable option for general content",
			Confidence:    0.75,
		}
	}
}

func matchesAny(style, prompt string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(style, kw) || strings.Contains(prompt, kw) {
			return true
		}
	}
	return false
}
