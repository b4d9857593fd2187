package sha256

import (
	"context"

	"github.com/cryptoprim/cp-digest/pkg/util"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// HashAll computes the digests of a list of independent messages,
// hashing up to the semaphore's weight of them concurrently. Within a
// single message, blocks are still processed sequentially; only whole
// messages run in parallel, as they share no mutable state. Results are
// returned in the same order as the messages.
func HashAll(ctx context.Context, hasher Hasher, messages [][]byte, concurrency *semaphore.Weighted) ([][Size]byte, error) {
	digests := make([][Size]byte, len(messages))
	group, ctxWithCancel := errgroup.WithContext(ctx)
	for i, message := range messages {
		if err := util.AcquireSemaphore(ctxWithCancel, concurrency, 1); err != nil {
			// Hashing of an earlier message failed, or the
			// caller canceled the context.
			if groupErr := group.Wait(); groupErr != nil {
				return nil, groupErr
			}
			return nil, err
		}
		group.Go(func() error {
			defer concurrency.Release(1)
			digest, err := hasher.Hash(message)
			if err != nil {
				return util.StatusWrapf(err, "Message at index %d", i)
			}
			digests[i] = digest
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
