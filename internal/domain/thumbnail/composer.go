package thumbnail

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
)

const maxPromptLength = 250

var (
	promptCharFilter = regexp.MustCompile(`[^\w\s,.-]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// styleSuffixes enrich the sanitized prompt before it is baked into the URL.
var styleSuffixes = map[Style]string{
	StylePhotorealistic: "photorealistic, high quality",
	StyleArtistic:       "artistic style, creative",
	StyleTypography:     "text design, clean typography",
	StyleAbstract:       "abstract art, modern design",
}

// ComposeParams is the composer input for one batch.
type ComposeParams struct {
	Prompt      string
	Style       Style
	AspectRatio AspectRatio
	Model       Model
	Reasoning   string
	ImageCount  int
}

// Composer builds batches of externally hosted image URLs. It performs no
// network I/O; the emitted URLs are fetched by the client when it renders the
// images.
type Composer struct {
	baseURL    string
	imageDelay time.Duration
	log        zerolog.Logger
}

// NewComposer constructs a Composer from configuration.
func NewComposer(cfg *config.Config, log zerolog.Logger) *Composer {
	return &Composer{
		baseURL:    cfg.ImageHostBaseURL,
		imageDelay: cfg.ImageDelay,
		log:        log.With().Str("component", "composer").Logger(),
	}
}

// Generate produces exactly params.ImageCount image descriptors for the given
// prompt. Each descriptor carries a distinct seed and cache-busting timestamp.
// The per-image delay paces calls against the external host; it is not a
// correctness requirement.
func (c *Composer) Generate(ctx context.Context, params ComposeParams) (*Generation, error) {
	start := time.Now()

	width, height := Dimensions(params.AspectRatio)
	cleanPrompt := sanitizePrompt(params.Prompt, params.Style)
	baseMillis := start.UnixMilli()

	images := make([]ImageDescriptor, 0, params.ImageCount)
	for i := 0; i < params.ImageCount; i++ {
		if i > 0 && c.imageDelay > 0 {
			if err := sleepCtx(ctx, c.imageDelay); err != nil {
				return nil, err
			}
		}

		seed := rand.Intn(999999) + i*1234
		cacheBuster := baseMillis + int64(i)*150

		images = append(images, ImageDescriptor{
			URL:          c.imageURL(cleanPrompt, width, height, seed, cacheBuster),
			Model:        fmt.Sprintf("%s v%d", params.Model, i+1),
			QualityScore: math.Round((8.0+rand.Float64()*2.0)*10) / 10,
		})
	}

	elapsed := int(math.Round(time.Since(start).Seconds()))
	c.log.Debug().
		Str("model", string(params.Model)).
		Int("images", len(images)).
		Int("width", width).
		Int("height", height).
		Int("generation_time", elapsed).
		Msg("composed image batch")

	return &Generation{
		Images:         images,
		GenerationTime: elapsed,
		SelectedModel:  params.Model,
		Reasoning:      params.Reasoning,
	}, nil
}

// Dimensions resolves the pixel size for an aspect ratio. Unknown ratios fall
// back to the widescreen dimensions.
func Dimensions(ratio AspectRatio) (width, height int) {
	switch ratio {
	case AspectSquare:
		return 1000, 1000
	case AspectStandard:
		return 1200, 900
	case AspectWidescreen:
		return 1200, 675
	default:
		return 1200, 675
	}
}

func (c *Composer) imageURL(prompt string, width, height, seed int, cacheBuster int64) string {
	q := url.Values{}
	q.Set("width", strconv.Itoa(width))
	q.Set("height", strconv.Itoa(height))
	q.Set("seed", strconv.Itoa(seed))
	q.Set("nologo", "true")
	q.Set("model", "flux")
	q.Set("safe", "true")
	q.Set("t", strconv.FormatInt(cacheBuster, 10))
	return fmt.Sprintf("%s/prompt/%s?%s", c.baseURL, url.PathEscape(prompt), q.Encode())
}

// sanitizePrompt strips characters the image host chokes on, normalizes
// whitespace, caps the length, and appends the style suffix.
func sanitizePrompt(prompt string, style Style) string {
	clean := promptCharFilter.ReplaceAllString(prompt, " ")
	clean = whitespaceRuns.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)
	if runes := []rune(clean); len(runes) > maxPromptLength {
		clean = string(runes[:maxPromptLength])
	}

	suffix, ok := styleSuffixes[Style(strings.ToLower(string(style)))]
	if !ok {
		suffix = "professional quality"
	}
	return clean + ", " + suffix
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
