package translation_provider

import (
	"fmt"

	"translate-relay/internal/third_party/deepl"
	"translate-relay/pkg/types"
)

// Factory creates translation providers based on the specified type
type Factory struct {
	config *types.Config
}

// NewFactory creates a new provider factory
func NewFactory(config *types.Config) *Factory {
	return &Factory{
		config: config,
	}
}

// CreateProvider creates a translation provider based on the specified type
func (f *Factory) CreateProvider(providerType TranslationProviderType) (TranslationProvider, error) {
	switch providerType {
	case ProviderDeepL:
		return deepl.NewClient(f.config.DeepL), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
