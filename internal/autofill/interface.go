package autofill

import "context"

// UseCase defines the business logic interface for the auto-fill domain.
type UseCase interface {
	// Run checks every candidate slot against the respondent's calendar and
	// derives an attendance answer per slot.
	Run(ctx context.Context, sessionToken string, input RunInput) (RunOutput, error)

	// RunLLM defers the per-slot judgment to a language model, processing
	// slots in fixed-size batches with incremental progress reporting.
	RunLLM(ctx context.Context, sessionToken string, input LLMInput) (LLMOutput, error)
}
