package translation_provider

import (
	"context"
	"encoding/json"

	"translate-relay/pkg/types"
)

// TranslationProvider defines the interface that all translation providers must implement
type TranslationProvider interface {
	// Translate translates plain text. An empty sourceLang asks the provider
	// to auto-detect the source language.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// UploadDocument submits a document for translation and returns the job
	// handle. The source language is always auto-detected on upload.
	UploadDocument(ctx context.Context, filename string, data []byte, targetLang string) (types.DocumentHandle, error)

	// DocumentStatus returns the provider's status payload verbatim.
	DocumentStatus(ctx context.Context, handle types.DocumentHandle) (json.RawMessage, error)

	// DownloadDocument retrieves the translated document into destPath.
	DownloadDocument(ctx context.Context, handle types.DocumentHandle, destPath string) error
}

// TranslationProviderType represents the type of translation provider
type TranslationProviderType string

const (
	ProviderDeepL TranslationProviderType = "deepl"
)
