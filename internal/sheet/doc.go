// Package sheet provides fetching and normalization of the raw event table.
//
// The sheet package models the dataset as an ordered header row plus ordered
// data rows, fetched either from the Google Sheets values API or from the
// sheet's "publish to web" HTML rendition. Normalization maps source column
// headers onto typed event fields through an explicit mapping table, drops
// rows without a title, and assigns positional IDs. Fetching is a single
// request per call with no retry; a short or malformed payload is a
// fetch-level error and the engine receives no events.
package sheet
