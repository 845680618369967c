package content

import "fmt"

// Gallery is a cursor over a fixed, ordered list of images. Navigation
// wraps in both directions; an empty gallery never indexes its list.
type Gallery struct {
	images []string
	index  int
}

// NewGallery creates a gallery positioned at the first image
func NewGallery(images []string) *Gallery {
	return &Gallery{images: images}
}

// Len returns the number of images
func (g *Gallery) Len() int {
	return len(g.images)
}

// Empty reports whether there is nothing to show
func (g *Gallery) Empty() bool {
	return len(g.images) == 0
}

// Index returns the current position
func (g *Gallery) Index() int {
	return g.index
}

// Previous steps back, wrapping from the first image to the last
func (g *Gallery) Previous() int {
	if g.Empty() {
		return 0
	}
	if g.index == 0 {
		g.index = len(g.images) - 1
	} else {
		g.index--
	}
	return g.index
}

// Next steps forward, wrapping from the last image to the first
func (g *Gallery) Next() int {
	if g.Empty() {
		return 0
	}
	if g.index == len(g.images)-1 {
		g.index = 0
	} else {
		g.index++
	}
	return g.index
}

// Current returns the image at the cursor; false for an empty gallery
func (g *Gallery) Current() (string, bool) {
	if g.Empty() {
		return "", false
	}
	return g.images[g.index], true
}

// Counter renders the 1-based position, e.g. "2 / 5"
func (g *Gallery) Counter() string {
	if g.Empty() {
		return ""
	}
	return fmt.Sprintf("%d / %d", g.index+1, len(g.images))
}
