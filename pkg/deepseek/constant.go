package deepseek

const (
	// DefaultBaseURL is the DeepSeek API endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "deepseek-chat"
)
