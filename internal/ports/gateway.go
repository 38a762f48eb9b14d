package ports

import (
	"context"

	"github.com/driplab/driptweet/internal/domain"
)

// Gateway publishes messages to the remote account and reports its most
// recent post. Implementations handle authentication and transport; the
// selection logic never touches either.
type Gateway interface {
	// LastPublished returns the newest post on the configured account.
	// The result's Exists field is false when the account has no posts yet,
	// which is not an error.
	LastPublished(ctx context.Context) (domain.LastPublished, error)

	// Publish transmits body to the account. When simulate is set, no
	// network effect takes place but success is still reported, so the
	// whole selection path can be dry-run end to end.
	Publish(ctx context.Context, body string, simulate bool) error
}
