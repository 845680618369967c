package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	err := OpenFileWithDefaultApp(filepath.Join(tempDir, "missing.mp4"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestRevealInFileManager_RejectsURL(t *testing.T) {
	err := RevealInFileManager("https://example.com/clip.mp4")
	if err == nil || !strings.Contains(err.Error(), "URL") {
		t.Errorf("Expected URL error, got %v", err)
	}
}

func TestRevealInFileManager_WithExistingFile(t *testing.T) {
	tempFile, err := os.CreateTemp("", "reveal_*.jpg")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())
	tempFile.Close()

	// Headless systems have no file manager; only the path handling is
	// under test here
	if err := RevealInFileManager(tempFile.Name()); err != nil {
		t.Logf("RevealInFileManager failed (expected on headless systems): %v", err)
	}
}

func TestResolveAssetBase(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveAssetBase(dir)
	if err != nil {
		t.Fatalf("ResolveAssetBase(%s): %v", dir, err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Expected absolute path, got %s", got)
	}

	if got, _ := ResolveAssetBase("https://cdn.example.com/assets"); got != "https://cdn.example.com/assets" {
		t.Errorf("URL base should pass through, got %s", got)
	}
	if got, _ := ResolveAssetBase(""); got != "" {
		t.Errorf("Empty base should stay empty, got %s", got)
	}

	if _, err := ResolveAssetBase(filepath.Join(dir, "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ResolveAssetBase(file); err == nil {
		t.Error("Expected error for a file used as base")
	}
}

func TestFindPortfolio(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected string
	}{
		{"well-known yaml", []string{"portfolio.json", "portfolio.yaml"}, "portfolio.yaml"},
		{"well-known json", []string{"notes.txt", "portfolio.json"}, "portfolio.json"},
		{"fallback shortest", []string{"my-portfolio-old.yaml", "my-portfolio.yaml"}, "my-portfolio.yaml"},
		{"fallback case", []string{"Portfolio_2024.JSON"}, "Portfolio_2024.JSON"},
		{"none", []string{"readme.md", "portfolio.txt"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := FindPortfolio(dir)
			if tt.expected == "" {
				if err == nil {
					t.Errorf("Expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindPortfolio: %v", err)
			}
			if filepath.Base(got) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, filepath.Base(got))
			}
		})
	}
}

func TestIsPortfolioFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"portfolio.yaml", true},
		{"site-portfolio.yml", true},
		{"PORTFOLIO.json", true},
		{"portfolio.yaml.bak", false},
		{"config.yaml", false},
	}
	for _, tt := range tests {
		if got := isPortfolioFileName(tt.name); got != tt.expected {
			t.Errorf("isPortfolioFileName(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
