package text_translator

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// TextProviderInterface defines the provider methods required for text translation
type TextProviderInterface interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TextTranslatorService forwards plain-text translation requests to the provider
type TextTranslatorService struct {
	logger   *zap.Logger
	provider TextProviderInterface
}

// NewTextTranslatorService creates a new instance of TextTranslatorService
func NewTextTranslatorService(logger *zap.Logger, provider TextProviderInterface) *TextTranslatorService {
	return &TextTranslatorService{
		logger:   logger,
		provider: provider,
	}
}

// Translate relays one text translation. A blank source language (after
// trimming) means the provider auto-detects it.
func (s *TextTranslatorService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	sourceLang = strings.TrimSpace(sourceLang)

	s.logger.Info("translating text",
		zap.String("source_language", sourceLang),
		zap.String("target_language", targetLang),
		zap.Int("text_length", len(text)),
	)

	translated, err := s.provider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}
	return translated, nil
}
