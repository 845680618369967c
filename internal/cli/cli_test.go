package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestValidatePortfolio_Embedded(t *testing.T) {
	var out bytes.Buffer
	if err := validatePortfolio(&out, ""); err != nil {
		t.Fatalf("embedded portfolio should validate: %v\n%s", err, out.String())
	}
	got := out.String()
	for _, want := range []string{EmbeddedSource, "Desktop icons", "about", "OK"} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q, got:\n%s", want, got)
		}
	}
}

func TestValidatePortfolio_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	data := `
desktopIcons:
  - id: dup
    name: One
    windowContent: { type: text, content: hi }
  - id: dup
    name: Two
    windowContent: { type: text, content: hi }
dockItems:
  - id: mail
    name: Mail
    type: link
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := validatePortfolio(&out, path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	got := out.String()
	if !strings.Contains(got, "Problems:") || !strings.Contains(got, `"dup"`) {
		t.Errorf("output should list the duplicate id, got:\n%s", got)
	}
}

func TestValidatePortfolio_Directory(t *testing.T) {
	dir := t.TempDir()
	data := `
menuBar: { ownerName: Dir Owner }
desktopIcons:
  - id: a
    name: A
    windowContent: { type: text, content: hi }
`
	if err := os.WriteFile(filepath.Join(dir, "portfolio.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := validatePortfolio(&out, dir); err != nil {
		t.Fatalf("validate dir: %v\n%s", err, out.String())
	}
}

func TestValidatePortfolio_Missing(t *testing.T) {
	var out bytes.Buffer
	if err := validatePortfolio(&out, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestResolveOptions_AssetBaseFromEnv(t *testing.T) {
	t.Setenv(EnvAssetBase, "https://cdn.example.com/folio")

	v := viper.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindOptions(v, flags)
	if err := flags.Parse([]string{"--portfolio", "me.yaml", "--debug"}); err != nil {
		t.Fatal(err)
	}

	opts := resolveOptions(v)
	if opts.AssetBase != "https://cdn.example.com/folio" {
		t.Errorf("AssetBase = %q", opts.AssetBase)
	}
	if opts.PortfolioPath != "me.yaml" || !opts.Debug {
		t.Errorf("flags not bound: %+v", opts)
	}
}

func TestResolveOptions_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvAssetBase, "/from/env")

	v := viper.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindOptions(v, flags)
	if err := flags.Parse([]string{"-a", "/from/flag"}); err != nil {
		t.Fatal(err)
	}

	if got := resolveOptions(v).AssetBase; got != "/from/flag" {
		t.Errorf("AssetBase = %q, want flag value", got)
	}
}

func TestResolveOptions_IgnoresOtherEnv(t *testing.T) {
	t.Setenv("FOLIO_PORTFOLIO", "/tmp/elsewhere.yaml")
	t.Setenv("FOLIO_DEBUG", "true")
	t.Setenv("FOLIO_LOG_FILE", "/tmp/x.log")

	v := viper.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindOptions(v, flags)
	if err := flags.Parse(nil); err != nil {
		t.Fatal(err)
	}

	opts := resolveOptions(v)
	if opts.PortfolioPath != "" || opts.Debug || opts.LogFile != "" {
		t.Errorf("options read from the environment: %+v", opts)
	}
}

func TestLoadPortfolio_RebasesAssets(t *testing.T) {
	base := t.TempDir()
	p, source, err := loadPortfolio("", base)
	if err != nil {
		t.Fatalf("loadPortfolio: %v", err)
	}
	if source != EmbeddedSource {
		t.Errorf("source = %q", source)
	}
	if !strings.HasPrefix(p.MenuBar.FinderIcon, base) {
		t.Errorf("finder icon %q not under %q", p.MenuBar.FinderIcon, base)
	}
}
