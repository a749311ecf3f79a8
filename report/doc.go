// Package report carries contained render failures to a diagnostic sink.
//
// The boundary does exactly one emission per failure; the sink is injected,
// never hardwired. LogReporter writes structured records via log/slog,
// Store keeps a local sqlite crash log, and Multi fans out to several sinks.
package report
