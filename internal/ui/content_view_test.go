package ui

import (
	"errors"
	"net/url"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/content"
	"github.com/wundara/folio-desktop/internal/model"
)

func testAssets() *AssetLoader {
	assets := NewAssetLoader(nil)
	assets.load = func(string) (fyne.Resource, error) { return theme.FileIcon(), nil }
	return assets
}

func TestContentRenderer_EveryStrategy(t *testing.T) {
	test.NewApp()
	r := NewContentRenderer(testAssets(), NewLocalization(), ContentActions{})

	contents := []model.Content{
		model.TextContent{Body: "hello"},
		model.ProjectListContent{Items: []model.Project{{Title: "P", Link: "https://example.com"}}},
		model.WorkListContent{Items: []model.WorkExample{{Title: "W", Images: []string{"w.jpg"}}}},
		model.MoodboardContent{Images: []string{"m.jpg"}},
		model.ImageContent{Src: "i.jpg"},
		model.GalleryContent{Images: []string{"1.jpg"}},
		model.VideoContent{Source: model.VideoLocal, Path: "clip.mp4"},
		model.VideoContent{Source: model.VideoOnline, URL: "https://player.example.com/v/1"},
		model.UnknownContent{},
	}
	for _, c := range contents {
		view := content.Resolve(model.WindowEntry{ID: "x", Content: c})
		if obj := r.Render(view); obj == nil {
			t.Errorf("%s rendered nil", view.Strategy)
		}
	}
}

func TestContentRenderer_TextIsScrollable(t *testing.T) {
	test.NewApp()
	r := NewContentRenderer(testAssets(), NewLocalization(), ContentActions{})

	obj := r.Render(content.View{Strategy: content.StrategyText, Text: "body"})
	scroll, ok := obj.(*container.Scroll)
	if !ok {
		t.Fatalf("text renders as %T, want *container.Scroll", obj)
	}
	if label, ok := scroll.Content.(*widget.Label); !ok || label.Text != "body" {
		t.Errorf("scroll content = %#v", scroll.Content)
	}
}

func TestContentRenderer_FallbackShowsMessage(t *testing.T) {
	test.NewApp()
	r := NewContentRenderer(testAssets(), NewLocalization(), ContentActions{})

	view := content.Resolve(model.WindowEntry{Content: model.UnknownContent{}})
	obj := r.Render(view)
	center, ok := obj.(*fyne.Container)
	if !ok || len(center.Objects) != 1 {
		t.Fatalf("fallback renders as %T", obj)
	}
	if label := center.Objects[0].(*widget.Label); label.Text != content.MessageUnknownContent {
		t.Errorf("fallback text = %q", label.Text)
	}
}

func TestContentRenderer_ErrorsAreNotified(t *testing.T) {
	test.NewApp()
	var notified string
	r := NewContentRenderer(testAssets(), NewLocalization(), ContentActions{
		OpenURL: func(*url.URL) error { return errors.New("no browser") },
		Notify:  func(msg string) { notified = msg },
	})

	r.openLink("https://example.com")

	if notified == "" {
		t.Fatal("link failure should be reported")
	}
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://example.com/a", true},
		{"mailto:me@example.com", true},
		{"", false},
		{"   ", false},
		{"relative/path", false},
	}
	for _, tt := range tests {
		if got := parseLink(tt.raw) != nil; got != tt.want {
			t.Errorf("parseLink(%q) ok = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestGalleryView_Navigation(t *testing.T) {
	test.NewApp()
	gv := NewGalleryView([]string{"1.jpg", "2.jpg", "3.jpg"}, testAssets())

	if gv.counter.Text != "1 / 3" {
		t.Fatalf("counter = %q", gv.counter.Text)
	}
	gv.Previous()
	if gv.Index() != 2 || gv.counter.Text != "3 / 3" {
		t.Errorf("previous from first: index %d counter %q", gv.Index(), gv.counter.Text)
	}
	gv.Next()
	gv.Next()
	if gv.Index() != 1 || gv.counter.Text != "2 / 3" {
		t.Errorf("after two next: index %d counter %q", gv.Index(), gv.counter.Text)
	}
}

func TestGalleryView_Empty(t *testing.T) {
	test.NewApp()
	gv := NewGalleryView(nil, testAssets())

	if gv.image != nil {
		t.Error("empty gallery should not build an image")
	}
	gv.Next()
	gv.Previous()
	if gv.Index() != 0 {
		t.Errorf("index = %d", gv.Index())
	}
}
