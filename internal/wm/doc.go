package wm

// Package wm holds the desktop's window-management state machine: the
// registry of open windows with their stacking order, and the drag,
// click-guard and resize behaviour shared by every movable element.
// Nothing here touches a UI toolkit; callers feed pointer positions and
// viewport dimensions in and read positions back out.
