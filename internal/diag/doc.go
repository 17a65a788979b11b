// Package diag defines the canonical diagnostic model shared by all layers.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     diagnostics parsed out of external checker reports.
//   - Define the location identities (Key, ExactKey) used to correlate
//     diagnostics across tools.
//
// # Scope
//
// Package diag performs no parsing, formatting, IO, or process invocation.
// Per-tool report parsing lives in internal/adapter, set reconciliation in
// internal/reconcile, and rendering in internal/reportfmt.
//
// # Data model
//
// Record is the central unit. It contains:
//
//   - Tool – which checker reported the diagnostic (tool.go).
//   - Path – the file path normalized to its final segment. Checkers root
//     paths differently (absolute, project-relative, tool-internal), so only
//     the basename is comparable across tools. The trade-off: two distinct
//     files sharing a basename in different directories are conflated. This
//     is a known limitation, accepted for flat-layout projects.
//   - Line – 1-based line number, always >= 1. Lines that cannot be parsed
//     as a positive integer never become Records.
//   - Message – the diagnostic text exactly as emitted, surrounding
//     whitespace trimmed. Embedded error codes stay literal text; messages
//     are compared byte-for-byte, never fuzzily.
//
// Keep the model deterministic: the same raw input must always produce the
// same Records in the same order, so reconciliation results are reproducible
// and safe to cache.
package diag
