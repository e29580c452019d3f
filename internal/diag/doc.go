// Package diag defines the diagnostic model shared by the scanner and the
// driver.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form (LEX1004), a short Message, the Primary span and optional
// Notes. Producers emit through a Reporter so they stay decoupled from storage;
// BagReporter collects into a Bag, which supports limits, sorting and
// deduplication.
//
// Package diag does no formatting or IO. Rendering lives in internal/diagfmt.
package diag
