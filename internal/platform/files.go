package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// AppDirName is the per-user directory name for config and cache
const AppDirName = "folio-desktop"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Portfolio descriptor names searched in a directory, in preference order
var (
	PortfolioFileNames  = []string{"portfolio.yaml", "portfolio.yml", "portfolio.json"}
	PortfolioExtensions = []string{".yaml", ".yml", ".json"}
)

// RevealInFileManager opens the system file manager at the file's location
func RevealInFileManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return revealLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealLinux opens the parent directory; selecting a file is not
// standardised across Linux file managers
func revealLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens a local media file in the system's default
// application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return "", fmt.Errorf("file path appears to be a URL: %s", filePath)
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ConfigDir returns the per-user configuration directory, creating it
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	dir := filepath.Join(base, AppDirName)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// AssetCacheDir returns the per-user directory for downloaded assets,
// creating it
func AssetCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}
	dir := filepath.Join(base, AppDirName, "assets")
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return dir, nil
}

// ResolveAssetBase normalises the asset base. URLs pass through; local
// bases must be existing directories and are made absolute.
func ResolveAssetBase(base string) (string, error) {
	if base == "" || strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return base, nil
	}
	info, err := os.Stat(base)
	if err != nil {
		return "", fmt.Errorf("asset directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("asset base is not a directory: %s", base)
	}
	return filepath.Abs(base)
}

// FindPortfolio locates the descriptor in dir. The well-known names win;
// otherwise any YAML or JSON file whose name mentions "portfolio" is used,
// shortest name first.
func FindPortfolio(dir string) (string, error) {
	for _, name := range PortfolioFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() || !isPortfolioFileName(entry.Name()) {
			continue
		}
		candidates = append(candidates, entry.Name())
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no portfolio descriptor in %s", dir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return filepath.Join(dir, candidates[0]), nil
}

// isPortfolioFileName reports whether name looks like a descriptor file
func isPortfolioFileName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	known := false
	for _, e := range PortfolioExtensions {
		if ext == e {
			known = true
			break
		}
	}
	if !known {
		return false
	}
	return strings.Contains(strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name))), "portfolio")
}
