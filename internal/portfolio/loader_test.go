package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wundara/folio-desktop/internal/model"
)

func TestDefault_LoadsAndValidates(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if err := Validate(p); err != nil {
		t.Fatalf("embedded portfolio should validate, got: %v", err)
	}
	if p.MenuBar.OwnerName == "" {
		t.Error("owner name should be set")
	}
	if len(p.DesktopIcons) == 0 || len(p.AutoOpenWidgets) == 0 {
		t.Error("embedded portfolio should declare icons and widgets")
	}
	if p.Music == nil || !p.Music.AutoPlay || !p.Music.Loop {
		t.Error("music should default to autoplay and loop")
	}
}

func TestParse_ContentVariants(t *testing.T) {
	data := []byte(`
desktopIcons:
  - id: a
    name: A
    windowContent: {type: text, content: hello}
  - id: b
    name: B
    windowContent:
      type: projectList
      items:
        - {id: p, title: P, image: [x.png]}
  - id: c
    name: C
    windowContent: {type: spreadsheet}
autoOpenWidgets:
  - id: v
    title: Clip
    type: video
    videoType: local
    videoPath: clip.mp4
    content: {type: text, content: ignored}
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if text, ok := p.DesktopIcons[0].Content.(model.TextContent); !ok || text.Body != "hello" {
		t.Errorf("icon a content = %#v, expected text hello", p.DesktopIcons[0].Content)
	}
	if p.DesktopIcons[0].Title != "A" {
		t.Errorf("title should fall back to icon name, got %q", p.DesktopIcons[0].Title)
	}

	list, ok := p.DesktopIcons[1].Content.(model.ProjectListContent)
	if !ok || len(list.Items) != 1 || len(list.Items[0].Images) != 1 {
		t.Fatalf("project list not converted: %#v", p.DesktopIcons[1].Content)
	}

	if u, ok := p.DesktopIcons[2].Content.(model.UnknownContent); !ok || u.Type != "spreadsheet" {
		t.Errorf("unknown tag should be preserved, got %#v", p.DesktopIcons[2].Content)
	}

	video, ok := p.AutoOpenWidgets[0].Content.(model.VideoContent)
	if !ok {
		t.Fatalf("outer video type should win, got %#v", p.AutoOpenWidgets[0].Content)
	}
	if video.Source != model.VideoLocal || video.Path != "clip.mp4" {
		t.Errorf("video = %#v", video)
	}
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"menuBar": {"ownerName": "J"}, "music": {"src": "m.mp3", "autoPlay": false}}`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.MenuBar.OwnerName != "J" {
		t.Errorf("owner = %q", p.MenuBar.OwnerName)
	}
	if p.Music.AutoPlay {
		t.Error("explicit autoPlay false should be kept")
	}
	if !p.Music.Loop {
		t.Error("loop should default to true")
	}
	if p.Music.Title != DefaultMusicTitle {
		t.Errorf("title = %q, expected %q", p.Music.Title, DefaultMusicTitle)
	}
}

func TestParse_GeneratesMissingIDs(t *testing.T) {
	p, err := Parse([]byte("desktopIcons:\n  - name: X\n    windowContent: {type: text}\n  - name: Y\n    windowContent: {type: text}\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	a, b := p.DesktopIcons[0].ID, p.DesktopIcons[1].ID
	if !strings.HasPrefix(a, GeneratedIDPrefix) {
		t.Errorf("generated id %q should carry prefix", a)
	}
	if a == b {
		t.Error("generated ids should be unique")
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("desktopIcons: [unterminated")); err == nil {
		t.Error("malformed descriptor should fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	path := filepath.Join(dir, "portfolio.json")
	if err := os.WriteFile(path, []byte(`{"menuBar": {"ownerName": "File"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p.MenuBar.OwnerName != "File" {
		t.Errorf("owner = %q", p.MenuBar.OwnerName)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	p := &model.Portfolio{
		DesktopIcons: []model.DesktopIcon{
			{ID: "dup", Content: model.TextContent{}},
			{ID: "empty", Content: model.UnknownContent{}},
		},
		AutoOpenWidgets: []model.AutoOpenWidget{
			{ID: "dup", Content: model.TextContent{}},
			{ID: "vid", Content: model.VideoContent{Source: model.VideoOnline}},
		},
		DockItems: []model.DockItem{
			{ID: "l", Kind: model.DockLink},
			{ID: "a", Kind: model.DockApp},
		},
	}

	err := Validate(p)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{`"dup"`, `"empty"`, `"vid"`, `dock link "l"`, `dock app "a"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %s, got:\n%s", want, msg)
		}
	}
}

func TestAssetPath(t *testing.T) {
	tests := []struct {
		base, ref, expected string
	}{
		{"", "a.png", "a.png"},
		{"/srv/assets", "", ""},
		{"/srv/assets", "https://cdn/x.png", "https://cdn/x.png"},
		{"https://cdn.example.com/", "/img/a.png", "https://cdn.example.com/img/a.png"},
		{"/srv/assets", "img/a.png", filepath.Join("/srv/assets", "img", "a.png")},
	}
	for _, tt := range tests {
		if got := AssetPath(tt.base, tt.ref); got != tt.expected {
			t.Errorf("AssetPath(%q, %q) = %q, expected %q", tt.base, tt.ref, got, tt.expected)
		}
	}
}

func TestWithAssetBase_DoesNotMutateSource(t *testing.T) {
	p := &model.Portfolio{
		DesktopIcons: []model.DesktopIcon{{
			ID:      "g",
			Icon:    "i.png",
			Content: model.GalleryContent{Images: []string{"a.jpg"}},
		}},
		Music: &model.MusicTrack{Src: "m.mp3"},
	}

	out := WithAssetBase(p, "/base")

	gallery := out.DesktopIcons[0].Content.(model.GalleryContent)
	if gallery.Images[0] != filepath.Join("/base", "a.jpg") {
		t.Errorf("gallery image = %q", gallery.Images[0])
	}
	if out.Music.Src != filepath.Join("/base", "m.mp3") {
		t.Errorf("music src = %q", out.Music.Src)
	}
	if p.DesktopIcons[0].Icon != "i.png" || p.Music.Src != "m.mp3" {
		t.Error("source portfolio should be left untouched")
	}
	if p.DesktopIcons[0].Content.(model.GalleryContent).Images[0] != "a.jpg" {
		t.Error("source content slices should not be shared")
	}
}

func TestRemoteAssetsAndLocalCopies(t *testing.T) {
	p := &model.Portfolio{
		MenuBar: model.MenuBar{FinderIcon: "https://cdn.example.com/finder.png"},
		DesktopIcons: []model.DesktopIcon{{
			ID:      "g",
			Icon:    "local.png",
			Content: model.GalleryContent{Images: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/finder.png"}},
		}},
		AutoOpenWidgets: []model.AutoOpenWidget{{
			ID:      "reel",
			Content: model.VideoContent{Source: model.VideoOnline, URL: "https://player.example.com/v/1"},
		}},
	}

	refs := RemoteAssets(p)
	want := []string{"https://cdn.example.com/finder.png", "https://cdn.example.com/a.jpg"}
	if len(refs) != len(want) {
		t.Fatalf("RemoteAssets = %v, want %v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("refs[%d] = %q, want %q", i, refs[i], want[i])
		}
	}

	out := WithLocalCopies(p, map[string]string{"https://cdn.example.com/a.jpg": "/cache/a.jpg"})
	gallery := out.DesktopIcons[0].Content.(model.GalleryContent)
	if gallery.Images[0] != "/cache/a.jpg" || gallery.Images[1] != "https://cdn.example.com/finder.png" {
		t.Errorf("gallery = %v", gallery.Images)
	}
	video := out.AutoOpenWidgets[0].Content.(model.VideoContent)
	if video.URL != "https://player.example.com/v/1" {
		t.Errorf("embedded player URL must not be treated as media, got %q", video.URL)
	}
}
