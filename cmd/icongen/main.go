// Command icongen renders the exitem favicon set into the addon's icon
// directory. It takes no arguments: the two output sizes and filenames
// are fixed, and rerunning simply overwrites both files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/exitem/icongen"
)

// iconDir is where the addon expects its icons, relative to the project
// root the command is run from.
var iconDir = filepath.Join("addon", "content", "icons")

var targets = []struct {
	size int
	name string
}{
	{32, "favicon.png"},
	{16, "favicon@0.5x.png"},
}

func main() {
	icongen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "icongen:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(iconDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", iconDir, err)
	}

	for _, t := range targets {
		pm := icongen.Render(t.size, icongen.DefaultSupersample)
		png, err := icongen.EncodePNG(pm.Width(), pm.Height(), pm.Scanlines())
		if err != nil {
			return fmt.Errorf("encoding %s: %w", t.name, err)
		}
		path := filepath.Join(iconDir, t.name)
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("wrote %s (%dx%d)\n", t.name, t.size, t.size)
	}
	return nil
}
