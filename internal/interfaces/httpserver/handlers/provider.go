package handlers

import (
	"github.com/rs/zerolog"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
)

// Provider wires HTTP handlers.
type Provider struct {
	Thumbnail *ThumbnailHandler
}

func NewProvider(cfg *config.Config, service *thumbnail.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Thumbnail: NewThumbnailHandler(cfg, service, log),
	}
}
