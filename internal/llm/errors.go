// Package llm provides a uniform client abstraction over the supported
// AI text-completion providers. The provider class is resolved once
// from the credential; each adapter isolates one provider's request
// and response envelope behind the shared Client interface.
package llm

import (
	"fmt"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// ProviderError reports a failed completion call: a non-success HTTP
// status or a malformed response envelope. Callers decide whether to
// fall back; the adapter itself never substitutes template output.
type ProviderError struct {
	Class   types.ProviderClass
	Status  int
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider error (%s): status %d: %s", e.Class, e.Status, e.Message)
	}
	return fmt.Sprintf("provider error (%s): %s", e.Class, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
