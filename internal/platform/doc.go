package platform

// Package platform contains OS integration glue: opening local media with
// the default application, revealing files, per-user directories and
// locating the portfolio descriptor on disk.
