package contracts

import (
	"context"
	"time"
)

// LockerService serializes settlement attempts per service order. TryLock
// never blocks: callers treat a held lock as a conflict and bail out.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
