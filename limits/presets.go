package limits

import "github.com/sevigo/chunkfit/schema"

// DefaultRegistry returns the built-in capacity table. Byte ceilings are
// request-body caps, not context-window sizes; character ceilings are
// derived from the token window at four characters per token.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]map[string]schema.Limits{
		"openai": {
			"gpt-4o":        {MaxTokens: 128000, MaxChars: 512000, MaxBytes: 32 << 20, MaxImages: 10, ImageByteLimit: 20 << 20},
			"gpt-4o-mini":   {MaxTokens: 128000, MaxChars: 512000, MaxBytes: 32 << 20, MaxImages: 10, ImageByteLimit: 20 << 20},
			"gpt-4-turbo":   {MaxTokens: 128000, MaxChars: 512000, MaxBytes: 32 << 20, MaxImages: 10, ImageByteLimit: 20 << 20},
			"gpt-3.5-turbo": {MaxTokens: 16385, MaxChars: 65540, MaxBytes: 1 << 20, MaxImages: 0, ImageByteLimit: 0},
			DefaultModelKey: {MaxTokens: 128000, MaxChars: 512000, MaxBytes: 32 << 20, MaxImages: 10, ImageByteLimit: 20 << 20},
		},
		"anthropic": {
			"claude-3-5-sonnet": {MaxTokens: 200000, MaxChars: 800000, MaxBytes: 32 << 20, MaxImages: 100, ImageByteLimit: 5 << 20},
			"claude-3-haiku":    {MaxTokens: 200000, MaxChars: 800000, MaxBytes: 32 << 20, MaxImages: 100, ImageByteLimit: 5 << 20},
			DefaultModelKey:     {MaxTokens: 200000, MaxChars: 800000, MaxBytes: 32 << 20, MaxImages: 100, ImageByteLimit: 5 << 20},
		},
		"google": {
			"gemini-1.5-pro":   {MaxTokens: 1000000, MaxChars: 4000000, MaxBytes: 50 << 20, MaxImages: 16, ImageByteLimit: 7 << 20},
			"gemini-1.5-flash": {MaxTokens: 1000000, MaxChars: 4000000, MaxBytes: 50 << 20, MaxImages: 16, ImageByteLimit: 7 << 20},
			DefaultModelKey:    {MaxTokens: 1000000, MaxChars: 4000000, MaxBytes: 50 << 20, MaxImages: 16, ImageByteLimit: 7 << 20},
		},
		"ollama": {
			DefaultModelKey: {MaxTokens: 8192, MaxChars: 32768, MaxBytes: 4 << 20, MaxImages: 4, ImageByteLimit: 10 << 20},
		},
	})
}
