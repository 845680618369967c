package portfolio

// Package portfolio loads the read-only desktop description (icons,
// auto-opened widgets, image files, dock, floating element, music) from
// YAML or JSON, validates it, and applies the asset base path to every
// media reference.
