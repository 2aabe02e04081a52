package catalog

// Package catalog implements the application core between the UI and the
// backend client. It owns list state machines with debounced filtering,
// drops superseded fetches, runs the two-phase save protocol for records
// with photos, and propagates state changes to the UI via callbacks.
