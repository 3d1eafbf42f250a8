// Package calendar implements the date-picker state machine shared by the
// list and map views.
//
// The widget owns a month cursor and an open/closed flag, and mutates the
// externally-owned date selection through the DateSelection interface. Days
// are clickable only when the date carries events and is not in the past;
// clicking the already-selected day reopens the picker instead of
// deselecting. The injected clock makes every date comparison deterministic
// under test.
package calendar
