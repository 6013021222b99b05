// Package validation provides struct-tag validation for chainkit
// configuration, built on the go-playground validator library.
//
// Validation failures are reported as structured AppErrors with
// per-field details, so the chainsim driver can print actionable
// messages for a misconfigured run.
package validation
