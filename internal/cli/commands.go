package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/pergola/internal/presentation/graph"
	"github.com/aretw0/pergola/pkg/manifest"
)

// RunValidate loads the manifest and prints its validation report to out.
// The returned error is non-nil when the report contains errors, so the
// command exits non-zero; warnings alone validate.
func RunValidate(path string, out io.Writer) error {
	f, err := manifest.Load(path)
	if err != nil {
		return err
	}

	problems := f.Validate()
	if len(problems) == 0 {
		fmt.Fprintln(out, "Manifest is valid! ✅")
		return nil
	}

	fmt.Fprintln(out, formatProblems(problems, ""))
	if problems.HasErrors() {
		return fmt.Errorf("manifest %s has errors", path)
	}
	fmt.Fprintln(out, "Manifest is valid (with warnings).")
	return nil
}

// RunGraph builds the menu headless and prints its Mermaid flowchart.
func RunGraph(path string, out io.Writer) error {
	f, err := manifest.Load(path)
	if err != nil {
		return err
	}

	m, err := f.Menu(manifest.WithOutput(io.Discard))
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Fprint(out, graph.GenerateMermaid(m.Title(), m.Options(), m.HasFallback()))
	return nil
}

// RunInit writes a starter pergola.yaml into dir. An existing manifest is
// never overwritten.
func RunInit(dir string, out io.Writer) error {
	path := filepath.Join(dir, "pergola.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; refusing to overwrite", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.WriteFile(path, manifest.Scaffold(), 0o644); err != nil {
		return fmt.Errorf("write scaffold: %w", err)
	}
	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
