package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedStore throttles the bytes moved through Put and Get of the
// wrapped Store. Delete and List pass through.
type RateLimitedStore struct {
	Store
	limiter *rate.Limiter
}

// NewRateLimitedStore wraps store with a budget of bytesPerSec. The burst
// equals one second of budget. A non-positive budget disables limiting.
func NewRateLimitedStore(store Store, bytesPerSec int) *RateLimitedStore {
	l := rate.NewLimiter(rate.Inf, 0)
	if bytesPerSec > 0 {
		l = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return &RateLimitedStore{Store: store, limiter: l}
}

// Put waits for budget covering len(data) and then writes.
func (s *RateLimitedStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.Store.Put(ctx, name, data)
}

// Get reads the blob and then charges its size against the budget.
func (s *RateLimitedStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.Store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// wait charges n bytes in burst-sized steps; WaitN rejects n above the burst.
func (s *RateLimitedStore) wait(ctx context.Context, n int) error {
	if s.limiter.Limit() == rate.Inf {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := s.limiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
