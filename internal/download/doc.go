package download

// Package download fetches the remote media of a portfolio into a local
// cache before the desktop opens, so images and icons never block the UI
// goroutine on the network. It manages the task lifecycle, a limit on
// parallel transfers, a single retry with backoff, and update callbacks.
