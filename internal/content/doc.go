package content

// Package content maps a window's content to the rendering strategy the
// view uses for it, and holds the index state of the photo gallery.
