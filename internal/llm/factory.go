package llm

import (
	"fmt"

	"vietscan/internal/config"
	"vietscan/internal/port"
)

// ProviderFactory is a function that creates a Completer from a provider config.
type ProviderFactory func(cfg *config.CompletionConfig) (port.Completer, error)

// registry of completion provider factories, populated explicitly via
// RegisterProvider at process start.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a Completer from a provider config using the
// registered factory.
func NewCompleter(cfg *config.CompletionConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
