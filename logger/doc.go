// Package logger provides structured logging for chainkit built on zerolog.
//
// It wraps zerolog.Logger with configuration, component tagging, and
// field helpers so that chains, samplers, and the chainsim driver log
// in a consistent shape.
package logger
