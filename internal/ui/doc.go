package ui

// Package ui renders a desktop.Desktop with Fyne. The Surface places
// icons, image icons, windows, the floating element, the menu bar and the
// dock from the desktop state and forwards pointer gestures back to it;
// DesktopUI hosts the surface in the application window together with the
// clock, the music controls and the settings dialog.
