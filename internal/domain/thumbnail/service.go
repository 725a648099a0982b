package thumbnail

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
	"github.com/Cre-XeOnz/XeonzGen/internal/infrastructure/metrics"
	"github.com/Cre-XeOnz/XeonzGen/internal/utils/genid"
	"github.com/Cre-XeOnz/XeonzGen/internal/utils/platformerrors"
)

// ErrNotFound is returned by repositories for unknown keys.
var ErrNotFound = errors.New("record not found")

// Repository defines persistence operations needed by the service. The store
// owns GenerationRequest and DailyUsage records for the process lifetime.
type Repository interface {
	CreateGenerationRequest(ctx context.Context, req *GenerationRequest) (*GenerationRequest, error)
	GetGenerationRequest(ctx context.Context, id string) (*GenerationRequest, error)
	GetDailyUsage(ctx context.Context, ipAddress, date string) (*DailyUsage, error)
	IncrementDailyUsage(ctx context.Context, ipAddress, date string) (*DailyUsage, error)
}

// GenerateParams carries one validated generation call.
type GenerateParams struct {
	Prompt      string
	Style       Style
	AspectRatio AspectRatio
	ImageCount  int
	IPAddress   string
}

// UsageSummary reports the per-IP daily counter alongside the remaining
// allowance. Generations are unlimited, so the allowance is a fixed constant.
type UsageSummary struct {
	GenerationsLeft int `json:"generationsLeft"`
	GenerationCount int `json:"generationCount"`
}

// Service orchestrates model selection, image composition and persistence.
type Service struct {
	cfg      *config.Config
	repo     Repository
	composer *Composer
	log      zerolog.Logger
}

// NewService constructs the thumbnail service.
func NewService(cfg *config.Config, repo Repository, composer *Composer, log zerolog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		repo:     repo,
		composer: composer,
		log:      log.With().Str("component", "thumbnail-service").Logger(),
	}
}

// AnalyzePrompt runs the rule-based selector without generating anything.
func (s *Service) AnalyzePrompt(prompt, style, aspectRatio string) ModelSelection {
	return SelectModel(prompt, style, aspectRatio)
}

// Generate selects a model, composes the image batch, persists the request and
// bumps the caller's daily usage counter. The counter bump never fails the
// call; its error is only logged.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*GenerationRequest, error) {
	start := time.Now()

	selection := SelectModel(params.Prompt, string(params.Style), string(params.AspectRatio))

	gen, err := s.composer.Generate(ctx, ComposeParams{
		Prompt:      params.Prompt,
		Style:       params.Style,
		AspectRatio: params.AspectRatio,
		Model:       selection.SelectedModel,
		Reasoning:   selection.Reasoning,
		ImageCount:  params.ImageCount,
	})
	if err != nil {
		metrics.RecordGeneration(string(selection.SelectedModel), string(params.Style), "error", 0, 0)
		return nil, platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "compose image batch", err)
	}

	record, err := s.repo.CreateGenerationRequest(ctx, &GenerationRequest{
		Prompt:          params.Prompt,
		Style:           params.Style,
		AspectRatio:     params.AspectRatio,
		SelectedModel:   selection.SelectedModel,
		ModelReasoning:  selection.Reasoning,
		GeneratedImages: gen.Images,
		GenerationTime:  gen.GenerationTime,
		QualityScore:    meanQualityScore(gen.Images),
	})
	if err != nil {
		metrics.RecordGeneration(string(selection.SelectedModel), string(params.Style), "error", 0, 0)
		return nil, platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "persist generation request", err)
	}

	// Fire-and-forget relative to the response: the result never depends on
	// the counter and a failed bump must not fail the generation.
	date := time.Now().UTC().Format("2006-01-02")
	if _, err := s.repo.IncrementDailyUsage(ctx, params.IPAddress, date); err != nil {
		s.log.Error().Err(err).Str("ip", params.IPAddress).Str("date", date).Msg("increment daily usage")
	} else {
		metrics.RecordUsageIncrement()
	}

	metrics.RecordGeneration(string(selection.SelectedModel), string(params.Style), "success", len(gen.Images), time.Since(start).Seconds())
	s.log.Info().
		Str("id", record.ID).
		Str("model", string(selection.SelectedModel)).
		Float64("confidence", selection.Confidence).
		Int("images", len(record.GeneratedImages)).
		Msg("generation complete")

	return record, nil
}

// GetGeneration returns the persisted record for an id.
func (s *Service) GetGeneration(ctx context.Context, id string) (*GenerationRequest, error) {
	record, err := s.repo.GetGenerationRequest(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "thumbnail request not found", err)
		}
		return nil, platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "load generation request", err)
	}
	return record, nil
}

// Usage reports the daily counter for an IP. A missing record counts as zero;
// the remaining allowance is the configured unlimited constant either way.
func (s *Service) Usage(ctx context.Context, ipAddress, date string) (*UsageSummary, error) {
	summary := &UsageSummary{GenerationsLeft: s.cfg.DailyAllowance}

	usage, err := s.repo.GetDailyUsage(ctx, ipAddress, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return summary, nil
		}
		return nil, platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "load daily usage", err)
	}

	summary.GenerationCount = usage.GenerationCount
	return summary, nil
}

// CreateVariation returns a variation descriptor for an existing image URL.
// The variation URL currently echoes the original: there is no image backend
// to transform against, so this endpoint is a placeholder kept for API
// compatibility.
func (s *Service) CreateVariation(ctx context.Context, imageURL, variationType string) *Variation {
	if variationType == "" {
		variationType = "style"
	}

	v := &Variation{
		OriginalURL:    imageURL,
		VariationURL:   imageURL,
		VariationType:  variationType,
		Model:          "pollinations-variation",
		ProcessingTime: 0.5,
		ID:             genid.New(genid.PrefixVariation),
	}

	s.log.Info().Str("id", v.ID).Str("type", variationType).Msg("variation created")
	return v
}

func meanQualityScore(images []ImageDescriptor) int {
	if len(images) == 0 {
		return 0
	}
	sum := lo.SumBy(images, func(img ImageDescriptor) float64 { return img.QualityScore })
	return int(math.Round(sum / float64(len(images))))
}
