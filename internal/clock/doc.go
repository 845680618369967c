package clock

// Package clock drives the menu bar's wall-clock display. A Clock formats
// the time as 24-hour HH:MM and hands each tick to a callback; callers
// that update widgets marshal the text onto the UI goroutine themselves.
