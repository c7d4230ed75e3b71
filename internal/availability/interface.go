package availability

import "context"

// UseCase defines the business logic interface for the availability domain.
type UseCase interface {
	// Resolve interprets a free-text (or legacy structured) date query and
	// answers it against the calendar feed and the price table.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
