package service

import (
	"sync"
	"time"
)

// SubmissionRateLimiter limits how often a single user can submit a scoring
// request. Keys are caller-chosen (user id in the API layer).
type SubmissionRateLimiter interface {
	Allow(key string) bool
}

type submissionRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewSubmissionRateLimiter crea un rate limiter en memoria.
func NewSubmissionRateLimiter(window time.Duration, max int) SubmissionRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &submissionRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *submissionRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}
