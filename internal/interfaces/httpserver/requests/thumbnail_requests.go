package requests

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
)

// GenerateThumbnailRequest is the payload for POST /api/generate-thumbnail.
// ImageCount defaults to the configured batch size when omitted.
type GenerateThumbnailRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	Style       string `json:"style" binding:"required,oneof=photorealistic artistic typography abstract"`
	AspectRatio string `json:"aspectRatio" binding:"required,oneof=16:9 1:1 4:3"`
	ImageCount  int    `json:"imageCount" binding:"omitempty,min=1,max=20"`
}

// ToParams converts the request to domain parameters.
func (r *GenerateThumbnailRequest) ToParams(ipAddress string, defaultImages int) thumbnail.GenerateParams {
	count := r.ImageCount
	if count == 0 {
		count = defaultImages
	}
	return thumbnail.GenerateParams{
		Prompt:      r.Prompt,
		Style:       thumbnail.Style(r.Style),
		AspectRatio: thumbnail.AspectRatio(r.AspectRatio),
		ImageCount:  count,
		IPAddress:   ipAddress,
	}
}

// AnalyzePromptRequest is the payload for POST /api/analyze-prompt.
type AnalyzePromptRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	Style       string `json:"style" binding:"required"`
	AspectRatio string `json:"aspectRatio" binding:"required"`
}

// CreateVariationRequest is the payload for POST /api/create-variation.
type CreateVariationRequest struct {
	ImageURL      string `json:"imageUrl" binding:"required"`
	VariationType string `json:"variationType"`
	Prompt        string `json:"prompt"`
}

// FieldViolation describes one invalid request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations maps a gin binding error to field-level detail. Non-validator
// errors (malformed JSON and friends) come back as a single body violation.
func Violations(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldViolation{{Field: "body", Rule: "json", Message: err.Error()}}
	}

	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldViolation{
			Field:   jsonFieldName(fe.Field()),
			Rule:    fe.Tag(),
			Message: fe.Error(),
		})
	}
	return out
}

// jsonFieldName lowercases the leading rune; the request structs keep their
// json tags aligned with the Go field names apart from casing.
func jsonFieldName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}
