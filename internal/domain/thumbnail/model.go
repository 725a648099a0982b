package thumbnail

import "time"

// Model is one of the three fixed generation model identifiers. The label is a
// display/routing tag only; no inference runs behind it.
type Model string

const (
	ModelStableDiffusion Model = "stable-diffusion"
	ModelFlux            Model = "flux"
	ModelSDXL            Model = "sdxl"
)

// Style is the closed set of prompt styles accepted by the API.
type Style string

const (
	StylePhotorealistic Style = "photorealistic"
	StyleArtistic       Style = "artistic"
	StyleTypography     Style = "typography"
	StyleAbstract       Style = "abstract"
)

// IsValid reports whether the style is a member of the closed set.
func (s Style) IsValid() bool {
	switch s {
	case StylePhotorealistic, StyleArtistic, StyleTypography, StyleAbstract:
		return true
	}
	return false
}

// AspectRatio is the closed set of supported output shapes.
type AspectRatio string

const (
	AspectWidescreen AspectRatio = "16:9"
	AspectSquare     AspectRatio = "1:1"
	AspectStandard   AspectRatio = "4:3"
)

// IsValid reports whether the aspect ratio is a member of the closed set.
func (a AspectRatio) IsValid() bool {
	switch a {
	case AspectWidescreen, AspectSquare, AspectStandard:
		return true
	}
	return false
}

// ImageDescriptor points at one externally hosted image. The service never
// fetches the URL itself; the client does when it renders the result.
type ImageDescriptor struct {
	URL          string  `json:"url"`
	Model        string  `json:"model"`
	QualityScore float64 `json:"qualityScore"`
}

// GenerationRequest is the persisted record of one successful generation call.
// Immutable once created.
type GenerationRequest struct {
	ID              string            `json:"id"`
	Prompt          string            `json:"prompt"`
	Style           Style             `json:"style"`
	AspectRatio     AspectRatio       `json:"aspectRatio"`
	SelectedModel   Model             `json:"selectedModel"`
	ModelReasoning  string            `json:"modelReasoning,omitempty"`
	GeneratedImages []ImageDescriptor `json:"generatedImages"`
	GenerationTime  int               `json:"generationTime"`
	QualityScore    int               `json:"qualityScore,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// DailyUsage counts generation calls per (ipAddress, date) pair. The pair is
// the uniqueness invariant; only the counter is ever mutated.
type DailyUsage struct {
	ID              string    `json:"id"`
	IPAddress       string    `json:"ipAddress"`
	Date            string    `json:"date"`
	GenerationCount int       `json:"generationCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ModelSelection is the outcome of the rule-based selector. Computed and
// consumed within a single request, never persisted standalone.
type ModelSelection struct {
	SelectedModel Model   `json:"selectedModel"`
	Reasoning     string  `json:"reasoning"`
	Confidence    float64 `json:"confidence"`
}

// Generation is the composer output for one batch.
type Generation struct {
	Images         []ImageDescriptor `json:"images"`
	GenerationTime int               `json:"generationTime"`
	SelectedModel  Model             `json:"selectedModel"`
	Reasoning      string            `json:"reasoning"`
}

// Variation is the result of a variation call. The variation URL currently
// echoes the original; see Service.CreateVariation.
type Variation struct {
	OriginalURL    string  `json:"originalUrl"`
	VariationURL   string  `json:"variationUrl"`
	VariationType  string  `json:"variationType"`
	Model          string  `json:"model"`
	ProcessingTime float64 `json:"processingTime"`
	ID             string  `json:"id"`
}
