package usecase

import "context"

// ResourceChangeNotifier signals the transport that the resource listing has
// changed after a ledger mutation. Implementations are best-effort: an absent
// or failing transport session must never fail the booking that triggered the
// notification.
type ResourceChangeNotifier interface {
	NotifyResourceListChanged(ctx context.Context)
}

// NopNotifier satisfies ResourceChangeNotifier when no transport is bound.
type NopNotifier struct{}

func (NopNotifier) NotifyResourceListChanged(ctx context.Context) {}
