package services

import (
	"translate-relay/internal/document_translator"
	"translate-relay/internal/text_translator"
)

// Services holds all application services
type Services struct {
	TextTranslatorService     *text_translator.TextTranslatorService
	DocumentTranslatorService *document_translator.DocumentTranslatorService
}

// NewServices creates and initializes all services
func NewServices(textService *text_translator.TextTranslatorService, documentService *document_translator.DocumentTranslatorService) *Services {
	return &Services{
		TextTranslatorService:     textService,
		DocumentTranslatorService: documentService,
	}
}
