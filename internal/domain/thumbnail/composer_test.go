package thumbnail

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
)

func testComposer() *Composer {
	cfg := &config.Config{
		ImageHostBaseURL: "https://image.pollinations.ai",
		ImageDelay:       0,
		DefaultImages:    5,
		MaxImages:        20,
	}
	return NewComposer(cfg, zerolog.Nop())
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		ratio      AspectRatio
		wantWidth  int
		wantHeight int
	}{
		{AspectWidescreen, 1200, 675},
		{AspectSquare, 1000, 1000},
		{AspectStandard, 1200, 900},
		{AspectRatio("9:16"), 1200, 675}, // unknown falls back to widescreen
		{AspectRatio(""), 1200, 675},
	}

	for _, tt := range tests {
		w, h := Dimensions(tt.ratio)
		if w != tt.wantWidth || h != tt.wantHeight {
			t.Errorf("Dimensions(%q) = %dx%d, want %dx%d", tt.ratio, w, h, tt.wantWidth, tt.wantHeight)
		}
	}
}

func TestComposerGenerateCountAndScores(t *testing.T) {
	c := testComposer()

	for _, count := range []int{1, 3, 5, 20} {
		gen, err := c.Generate(context.Background(), ComposeParams{
			Prompt:      "a bowl of fruit",
			Style:       StyleAbstract,
			AspectRatio: AspectSquare,
			Model:       ModelStableDiffusion,
			Reasoning:   "test",
			ImageCount:  count,
		})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(gen.Images) != count {
			t.Errorf("Generate returned %d images, want %d", len(gen.Images), count)
		}
		for i, img := range gen.Images {
			if img.QualityScore < 8.0 || img.QualityScore > 10.0 {
				t.Errorf("image %d quality score %v outside [8.0, 10.0]", i, img.QualityScore)
			}
			wantLabel := string(ModelStableDiffusion)
			if !strings.HasPrefix(img.Model, wantLabel+" v") {
				t.Errorf("image %d label = %q, want prefix %q", i, img.Model, wantLabel+" v")
			}
		}
		if gen.GenerationTime < 0 {
			t.Errorf("generation time %d is negative", gen.GenerationTime)
		}
	}
}

func TestComposerGenerateURLDimensions(t *testing.T) {
	c := testComposer()

	tests := []struct {
		name  string
		ratio AspectRatio
		want  string
	}{
		{"square encodes 1000x1000", AspectSquare, "width=1000"},
		{"unknown ratio falls back to widescreen", AspectRatio("21:9"), "width=1200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := c.Generate(context.Background(), ComposeParams{
				Prompt:      "city at night",
				Style:       StylePhotorealistic,
				AspectRatio: tt.ratio,
				Model:       ModelSDXL,
				ImageCount:  2,
			})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			for _, img := range gen.Images {
				if !strings.Contains(img.URL, tt.want) {
					t.Errorf("URL %q missing %q", img.URL, tt.want)
				}
				if !strings.Contains(img.URL, "nologo=true") || !strings.Contains(img.URL, "safe=true") {
					t.Errorf("URL %q missing fixed flags", img.URL)
				}
			}
		})
	}
}

func TestComposerGenerateDistinctURLs(t *testing.T) {
	c := testComposer()

	gen, err := c.Generate(context.Background(), ComposeParams{
		Prompt:      "A beautiful mountain landscape at sunset",
		Style:       StylePhotorealistic,
		AspectRatio: AspectWidescreen,
		Model:       ModelSDXL,
		ImageCount:  3,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, img := range gen.Images {
		if !strings.Contains(img.URL, "width=1200") || !strings.Contains(img.URL, "height=675") {
			t.Errorf("URL %q missing 16:9 dimensions", img.URL)
		}
		if seen[img.URL] {
			t.Errorf("duplicate URL in batch: %q", img.URL)
		}
		seen[img.URL] = true
	}
}

func TestComposerGenerateCancellation(t *testing.T) {
	cfg := &config.Config{
		ImageHostBaseURL: "https://image.pollinations.ai",
		ImageDelay:       50 * time.Millisecond,
	}
	c := NewComposer(cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Generate(ctx, ComposeParams{
		Prompt:      "slow batch",
		Style:       StyleArtistic,
		AspectRatio: AspectSquare,
		Model:       ModelFlux,
		ImageCount:  5,
	})
	if err == nil {
		t.Fatal("Generate should fail when the context is cancelled mid-batch")
	}
}

func TestSanitizePrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		style  Style
		want   string
	}{
		{
			name:   "strips special characters",
			prompt: "a cat! @home #cozy",
			style:  StylePhotorealistic,
			want:   "a cat home cozy, photorealistic, high quality",
		},
		{
			name:   "collapses whitespace",
			prompt: "  a   spaced    prompt  ",
			style:  StyleArtistic,
			want:   "a spaced prompt, artistic style, creative",
		},
		{
			name:   "keeps word chars commas periods hyphens",
			prompt: "blue-green sky, 4k. detailed",
			style:  StyleTypography,
			want:   "blue-green sky, 4k. detailed, text design, clean typography",
		},
		{
			name:   "unknown style gets generic suffix",
			prompt: "plain prompt",
			style:  Style("sketch"),
			want:   "plain prompt, professional quality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePrompt(tt.prompt, tt.style); got != tt.want {
				t.Errorf("sanitizePrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizePromptTruncates(t *testing.T) {
	long := strings.Repeat("a", 400)
	got := sanitizePrompt(long, StyleAbstract)
	want := strings.Repeat("a", 250) + ", abstract art, modern design"
	if got != want {
		t.Errorf("sanitizePrompt() did not truncate to 250 characters: len=%d", len(got))
	}
}
