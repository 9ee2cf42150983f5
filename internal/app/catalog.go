package app

// ProviderOption is one provider the setup wizard and the model form know
// how to configure. DefaultModels pairs suggested aliases with model ids.
type ProviderOption struct {
	Key           string
	Name          string
	AuthType      string
	ProviderType  string
	BaseURL       string
	DefaultModels [][2]string // alias, model id
}

var providerCatalog = []ProviderOption{
	{
		Key:          "claude-pro-max",
		Name:         "Claude Pro/Max",
		AuthType:     "oauth",
		ProviderType: "anthropic",
		DefaultModels: [][2]string{
			{"haiku", "claude-haiku-4-5-20251001"},
			{"sonnet", "claude-sonnet-4-5-20250929"},
			{"opus", "claude-opus-4-5-20251101"},
		},
	},
	{
		Key:          "anthropic",
		Name:         "Anthropic API",
		AuthType:     "api_key",
		ProviderType: "anthropic",
		DefaultModels: [][2]string{
			{"fast", "claude-sonnet-4-20250514"},
			{"smart", "claude-opus-4-20250514"},
			{"haiku", "claude-haiku-3-5-20241022"},
		},
	},
	{
		Key:          "openrouter",
		Name:         "OpenRouter",
		AuthType:     "api_key",
		ProviderType: "openai",
		BaseURL:      "https://openrouter.ai/api/v1",
		DefaultModels: [][2]string{
			{"mistral-small", "mistralai/mistral-small-creative"},
			{"devstral", "mistralai/devstral-2512:free"},
			{"mimo", "xiaomi/mimo-v2-flash:free"},
			{"grok", "x-ai/grok-4.1-fast"},
		},
	},
}

// ProviderOptions returns the fixed provider catalog.
func ProviderOptions() []ProviderOption {
	return providerCatalog
}

// ModelsForProvider returns the known model ids for a provider key, empty
// for providers outside the catalog.
func ModelsForProvider(key string) []string {
	for _, p := range providerCatalog {
		if p.Key == key {
			ids := make([]string, len(p.DefaultModels))
			for i, m := range p.DefaultModels {
				ids[i] = m[1]
			}
			return ids
		}
	}
	return nil
}
