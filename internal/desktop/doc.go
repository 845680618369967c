package desktop

// Package desktop composes the window registry, the movable image icons,
// the floating element and the dock into the state of one simulated
// desktop screen. The ui package renders it; everything here is toolkit
// independent.
