package gemini

import "context"

// IGemini is the Gemini API client surface. Implementations are safe for
// concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to the Gemini API.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model in use.
	Model() string
}

// New validates cfg and returns a Gemini client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
