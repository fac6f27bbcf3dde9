package scope

import "fmt"

// GlobalResult reports one run of the shared-state demonstrator.
type GlobalResult struct {
	Counter int64  `json:"counter"`
	Message string `json:"message"`
}

// LocalResult reports one run of the local-state demonstrator. Product is
// computed from values private to the call; Counter is the observed (and
// unchanged) shared value, shown to contrast owned vs. observed state.
type LocalResult struct {
	Product int    `json:"product"`
	Counter int64  `json:"counter"`
	Message string `json:"message"`
}

// RunGlobalDemo advances the shared counter by exactly one. Calls are not
// idempotent: every call observably moves shared state forward.
func RunGlobalDemo(c *Counter) GlobalResult {
	n := c.Increment()
	return GlobalResult{
		Counter: n,
		Message: fmt.Sprintf("shared counter is now %d", n),
	}
}

// RunLocalDemo multiplies two call-local values and reads the shared
// counter without touching it.
func RunLocalDemo(c *Counter) LocalResult {
	a, b := 5, 3
	product := a * b
	return LocalResult{
		Product: product,
		Counter: c.Value(),
		Message: fmt.Sprintf("%d x %d = %d computed from local values only", a, b, product),
	}
}
