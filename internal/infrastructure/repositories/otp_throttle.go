package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// OTPThrottleImpl implements domain.OTPThrottle using Redis key expiry
type OTPThrottleImpl struct {
	client       *redis.Client
	prefix       string
	resendWindow time.Duration
	attemptTTL   time.Duration
}

// NewOTPThrottle creates a Redis backed throttle. resendWindow bounds how
// often a code may be sent; attempt counters live for attemptTTL.
func NewOTPThrottle(client *redis.Client, resendWindow, attemptTTL time.Duration) domain.OTPThrottle {
	return &OTPThrottleImpl{
		client:       client,
		prefix:       "otp:",
		resendWindow: resendWindow,
		attemptTTL:   attemptTTL,
	}
}

func (r *OTPThrottleImpl) resendKey(email string) string  { return r.prefix + "res:" + email }
func (r *OTPThrottleImpl) attemptKey(email string) string { return r.prefix + "att:" + email }

// CanResend implements domain.OTPThrottle. The second return value is the
// remaining wait in seconds when a resend is not yet allowed.
func (r *OTPThrottleImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if r.resendWindow <= 0 {
		return true, 0, nil
	}
	ttl, err := r.client.TTL(ctx, r.resendKey(email)).Result()
	if err != nil {
		return false, 0, err
	}
	// -2 (missing) and -1 (no expiry) both come back as negative durations
	if ttl <= 0 {
		return true, 0, nil
	}
	secs := int64(ttl / time.Second)
	if ttl%time.Second != 0 {
		secs++
	}
	return false, secs, nil
}

// MarkSent implements domain.OTPThrottle
func (r *OTPThrottleImpl) MarkSent(ctx context.Context, email string) error {
	if r.resendWindow <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.resendKey(email), 1, r.resendWindow).Err()
}

// RegisterAttempt implements domain.OTPThrottle and returns the attempt count
// including this one.
func (r *OTPThrottleImpl) RegisterAttempt(ctx context.Context, email string) (int64, error) {
	key := r.attemptKey(email)
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && r.attemptTTL > 0 {
		if err := r.client.Expire(ctx, key, r.attemptTTL).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Reset implements domain.OTPThrottle
func (r *OTPThrottleImpl) Reset(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.attemptKey(email)).Err()
}
