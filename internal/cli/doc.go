// Package cli implements the Cobra-based command-line interface.
//
// The cli package wires the sheet, filter, view, calendar, geo, storage,
// and server packages into the list, map, calendar, check, ics, and serve
// commands, with text and JSON output formats. Configuration comes from a
// YAML file plus environment overrides; --offline swaps the network fetch
// for the stored snapshot.
package cli
