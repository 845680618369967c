package model

// Package model defines the data structures shared across the desktop:
// geometry, open window entries, the closed set of window content kinds,
// drag state, and the read-only descriptors the portfolio is built from.
