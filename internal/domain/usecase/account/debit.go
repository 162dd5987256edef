package account

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// RetryPolicy bounds the compare-and-swap loop of a debit
type RetryPolicy struct {
	MaxRetries   int
	Interval     time.Duration
	MaxInterval  time.Duration
	JitterFactor float64 // 0.0-1.0 share of the backoff added at random
}

// DefaultRetryPolicy returns the policy used when none is configured
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   5,
		Interval:     20 * time.Millisecond,
		MaxInterval:  500 * time.Millisecond,
		JitterFactor: 0.5,
	}
}

// backoff computes Interval * 2^attempt capped at MaxInterval, plus jitter
func (p RetryPolicy) backoff(attempt int) time.Duration {
	backoff := p.Interval << uint(min(attempt, 16))
	if p.MaxInterval > 0 && backoff > p.MaxInterval {
		backoff = p.MaxInterval
	}
	if p.JitterFactor > 0 && backoff > 0 {
		backoff += time.Duration(rand.Float64() * p.JitterFactor * float64(backoff))
	}
	return backoff
}

// Debit removes amount from the wallet. The balance is re-read on every
// attempt and written only if the version is unchanged, so a concurrent
// purchase that drains the wallet makes the retry fail with insufficient balance.
func (u *AccountUseCase) Debit(ctx context.Context, id string, amount int64) (*entity.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit must be positive", errs.ErrInvalidAmount)
	}

	attempts := u.retry.MaxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		account, err := u.accountRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		next, err := account.BalanceAfter(-amount)
		if err != nil {
			return nil, err
		}

		swapped, err := u.accountRepo.CompareAndSwapBalance(ctx, id, account.Version, next)
		if err != nil {
			return nil, err
		}
		if swapped {
			account.SetBalance(next, u.timeProvider)
			account.Version++
			u.logger.Info("Wallet debited", map[string]any{
				"account_id": id,
				"amount":     amount,
				"balance":    next,
				"attempt":    attempt + 1,
			})
			return account, nil
		}

		if attempt == attempts-1 {
			break
		}
		wait := u.retry.backoff(attempt)
		u.logger.Debug("Balance version conflict, retrying debit", map[string]any{
			"account_id":  id,
			"attempt":     attempt + 1,
			"retry_after": wait.String(),
		})
		if err := u.timeProvider.Sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	u.logger.Warn("Debit gave up after repeated version conflicts", map[string]any{
		"account_id": id,
		"amount":     amount,
		"attempts":   attempts,
	})
	return nil, fmt.Errorf("%w: account %s after %d attempts", errs.ErrConcurrentUpdate, id, attempts)
}
