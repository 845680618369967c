package cli

import (
	"fmt"
	"os"

	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/platform"
	"github.com/wundara/folio-desktop/internal/portfolio"
)

// EmbeddedSource names the built-in sample portfolio in logs and output
const EmbeddedSource = "(embedded)"

// loadPortfolio reads, validates and rebases the descriptor. An empty path
// selects the embedded sample; a directory is searched for a descriptor.
func loadPortfolio(path, assetBase string) (*model.Portfolio, string, error) {
	p, source, err := readPortfolio(path)
	if err != nil {
		return nil, source, err
	}
	if err := portfolio.Validate(p); err != nil {
		return nil, source, fmt.Errorf("invalid portfolio %s:\n%w", source, err)
	}

	base, err := platform.ResolveAssetBase(assetBase)
	if err != nil {
		return nil, source, err
	}
	return portfolio.WithAssetBase(p, base), source, nil
}

func readPortfolio(path string) (*model.Portfolio, string, error) {
	if path == "" {
		p, err := portfolio.Default()
		return p, EmbeddedSource, err
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		found, err := platform.FindPortfolio(path)
		if err != nil {
			return nil, path, err
		}
		path = found
	}

	p, err := portfolio.Load(path)
	return p, path, err
}
