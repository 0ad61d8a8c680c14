package generation

import "fmt"

// ParseFault marks a model response that could not be decoded into the
// stage's expected shape. It is always recovered locally by synthesizing a
// fallback payload and never reaches the caller.
type ParseFault struct {
	Stage Stage
	Raw   string
	Err   error
}

func (f *ParseFault) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", f.Stage, f.Err)
}

func (f *ParseFault) Unwrap() error {
	return f.Err
}

// GenerationServiceError marks a failure of the model call itself
// (timeout, network, provider error). It aborts the pipeline before any
// persistence happens.
type GenerationServiceError struct {
	Stage Stage
	Err   error
}

func (e *GenerationServiceError) Error() string {
	return fmt.Sprintf("generation service failed at %s stage: %v", e.Stage, e.Err)
}

func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}
