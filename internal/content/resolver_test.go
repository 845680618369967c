package content

import (
	"testing"

	"github.com/wundara/folio-desktop/internal/model"
)

func entryWith(c model.Content) model.WindowEntry {
	return model.WindowEntry{ID: "w", Title: "Window", Content: c}
}

func TestResolve_Strategies(t *testing.T) {
	tests := []struct {
		name     string
		content  model.Content
		strategy Strategy
		source   string
		text     string
	}{
		{"text", model.TextContent{Body: "hello"}, StrategyText, "", "hello"},
		{"projects", model.ProjectListContent{Items: []model.Project{{ID: "p1"}}}, StrategyProjectList, "", ""},
		{"work", model.WorkListContent{Items: []model.WorkExample{{ID: "w1"}}}, StrategyWorkList, "", ""},
		{"moodboard", model.MoodboardContent{Images: []string{"/m.png"}}, StrategyMoodboard, "", ""},
		{"image", model.ImageContent{Src: "/full.png"}, StrategyImage, "/full.png", ""},
		{"gallery", model.GalleryContent{Images: []string{"/a.png"}}, StrategyGallery, "", ""},
		{"empty gallery", model.GalleryContent{}, StrategyGallery, "", MessageEmptyGallery},
		{"local video", model.VideoContent{Source: model.VideoLocal, Path: "/v.mp4"}, StrategyLocalVideo, "/v.mp4", ""},
		{"online video", model.VideoContent{Source: model.VideoOnline, URL: "https://player/x"}, StrategyEmbeddedVideo, "https://player/x", ""},
		{"local video without path", model.VideoContent{Source: model.VideoLocal, URL: "https://x"}, StrategyFallback, "", MessageUnknownVideo},
		{"video without source", model.VideoContent{Path: "/v.mp4"}, StrategyFallback, "", MessageUnknownVideo},
		{"unknown", model.UnknownContent{Type: "spreadsheet"}, StrategyFallback, "", MessageUnknownContent},
		{"nil", nil, StrategyFallback, "", MessageUnknownContent},
	}

	for _, test := range tests {
		v := Resolve(entryWith(test.content))
		if v.Strategy != test.strategy {
			t.Errorf("%s: strategy = %s, expected %s", test.name, v.Strategy, test.strategy)
		}
		if v.Source != test.source {
			t.Errorf("%s: source = %q, expected %q", test.name, v.Source, test.source)
		}
		if v.Text != test.text {
			t.Errorf("%s: text = %q, expected %q", test.name, v.Text, test.text)
		}
		if v.Title != "Window" {
			t.Errorf("%s: title = %q", test.name, v.Title)
		}
	}
}

func TestResolve_Headings(t *testing.T) {
	if h := Resolve(entryWith(model.ProjectListContent{})).Heading; h != HeadingProjects {
		t.Errorf("project heading = %q", h)
	}
	if h := Resolve(entryWith(model.WorkListContent{})).Heading; h != HeadingWork {
		t.Errorf("work heading = %q", h)
	}
	if h := Resolve(entryWith(model.MoodboardContent{})).Heading; h != HeadingMoodboard {
		t.Errorf("moodboard heading = %q", h)
	}
}
