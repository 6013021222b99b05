// Package resilience provides retry with exponential backoff.
//
// Its primary consumer is chain.WithRetry: a failed Next commits no
// chain state, so generation closures backed by flaky sources (I/O,
// remote entropy, adapted streams) can be retried safely.
package resilience
