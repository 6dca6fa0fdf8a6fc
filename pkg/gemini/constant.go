package gemini

import "time"

const (
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the Gemini API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single HTTP call.
	DefaultTimeout = 30 * time.Second
)
