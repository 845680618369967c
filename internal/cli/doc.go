package cli

// Package cli is the command-line surface: "run" opens the desktop and
// "validate" checks a portfolio descriptor without starting the UI.
