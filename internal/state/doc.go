// Package state provides the thread-safe snapshot of navigation-bar data
// (favorites count, session) shared between the background poller and the UI.
//
// The poller calls Update after each refresh; the UI calls Snapshot on its
// tick. Errors keep the previous data and bump ConsecutiveFailures so the
// header can show an offline badge once IsOffline reports true.
package state
