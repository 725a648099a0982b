package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver/requests"
	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver/responses"
)

// ThumbnailHandler exposes the thumbnail generation endpoints.
type ThumbnailHandler struct {
	cfg     *config.Config
	service *thumbnail.Service
	log     zerolog.Logger
}

func NewThumbnailHandler(cfg *config.Config, service *thumbnail.Service, log zerolog.Logger) *ThumbnailHandler {
	return &ThumbnailHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "thumbnail-handler").Logger(),
	}
}

// Usage godoc
// @Summary      Daily usage for the caller
// @Description  Reports the per-IP generation counter for a calendar day. Generations are unlimited; the remaining allowance is a fixed constant.
// @Tags         usage
// @Produce      json
// @Param        date  path      string  true  "Calendar day (YYYY-MM-DD)"
// @Success      200   {object}  thumbnail.UsageSummary
// @Failure      500   {object}  responses.ErrorResponse
// @Router       /api/usage/{date} [get]
func (h *ThumbnailHandler) Usage(c *gin.Context) {
	date := c.Param("date")

	summary, err := h.service.Usage(c.Request.Context(), c.ClientIP(), date)
	if err != nil {
		h.log.Error().Err(err).Str("date", date).Msg("usage lookup failed")
		responses.HandleError(c, err, "Failed to get usage data")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// AnalyzePrompt godoc
// @Summary      Analyze a prompt
// @Description  Runs the rule-based model selector without generating images.
// @Tags         thumbnails
// @Accept       json
// @Produce      json
// @Param        request  body      requests.AnalyzePromptRequest  true  "Prompt to analyze"
// @Success      200      {object}  thumbnail.ModelSelection
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /api/analyze-prompt [post]
func (h *ThumbnailHandler) AnalyzePrompt(c *gin.Context) {
	var req requests.AnalyzePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	selection := h.service.AnalyzePrompt(req.Prompt, req.Style, req.AspectRatio)
	c.JSON(http.StatusOK, selection)
}

// Generate godoc
// @Summary      Generate a thumbnail batch
// @Description  Selects a model for the prompt, composes externally hosted image URLs and persists the request.
// @Tags         thumbnails
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateThumbnailRequest  true  "Generation request"
// @Success      200      {object}  responses.GenerateResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/generate-thumbnail [post]
func (h *ThumbnailHandler) Generate(c *gin.Context) {
	var req requests.GenerateThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	record, err := h.service.Generate(c.Request.Context(), req.ToParams(c.ClientIP(), h.cfg.DefaultImages))
	if err != nil {
		h.log.Error().Err(err).Msg("generation failed")
		responses.HandleError(c, err, "Failed to generate thumbnail")
		return
	}

	c.JSON(http.StatusOK, responses.BuildGenerateResponse(record))
}

// GetByID godoc
// @Summary      Fetch a generation request
// @Description  Returns the persisted generation record.
// @Tags         thumbnails
// @Produce      json
// @Param        id   path      string  true  "Generation request id"
// @Success      200  {object}  thumbnail.GenerationRequest
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /api/thumbnail/{id} [get]
func (h *ThumbnailHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	record, err := h.service.GetGeneration(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "Thumbnail request not found")
		return
	}

	c.JSON(http.StatusOK, record)
}

// CreateVariation godoc
// @Summary      Create an image variation
// @Description  Returns a variation descriptor for an existing image URL. The variation URL currently echoes the original (placeholder behavior).
// @Tags         thumbnails
// @Accept       json
// @Produce      json
// @Param        request  body      requests.CreateVariationRequest  true  "Variation request"
// @Success      200      {object}  thumbnail.Variation
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /api/create-variation [post]
func (h *ThumbnailHandler) CreateVariation(c *gin.Context) {
	var req requests.CreateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	variation := h.service.CreateVariation(c.Request.Context(), req.ImageURL, req.VariationType)
	c.JSON(http.StatusOK, variation)
}
