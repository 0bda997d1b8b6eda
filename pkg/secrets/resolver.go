// Package secrets is the seam to the external secret-injection layer.
// Header values produced by the auth builder embed opaque {{...}} tokens;
// a Resolver substitutes the actual credential at request time. This
// service never stores or observes plaintext secrets itself.
package secrets

import "context"

type Resolver interface {
	// Resolve substitutes any secret placeholders embedded in value.
	// Values without placeholders are returned unchanged.
	Resolve(ctx context.Context, value string) (string, error)
}

// Passthrough leaves placeholder tokens unresolved. It is the default
// when no external secret store is wired in, which keeps outbound
// requests valid in shape while guaranteeing no credential ever
// transits this process.
type Passthrough struct{}

func (Passthrough) Resolve(_ context.Context, value string) (string, error) {
	return value, nil
}
