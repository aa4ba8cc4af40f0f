package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

var initCmd = &cobra.Command{
	Use:   "init <directory> [module-path]",
	Short: "Scaffold a sheet preview project",
	Long: `Init creates a new directory with a go.mod, a starter scenario, and a
main.go that renders the scenario's sheet to an SVG.

The module path defaults to the directory basename. When init runs
inside an existing Go module, the default is that module's path with
the new directory appended, so nested preview projects get a proper
import path.

Examples:
  sheetsnap init preview
  sheetsnap init preview github.com/username/preview`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := filepath.Clean(args[0])
		if strings.HasPrefix(args[0], "~") {
			return fmt.Errorf("tilde (~) is not expanded; use an absolute path or $HOME instead")
		}

		modulePath := ""
		if len(args) > 1 {
			modulePath = args[1]
		} else {
			modulePath = defaultModulePath(dir)
		}
		if err := module.CheckPath(modulePath); err != nil {
			if len(args) > 1 {
				return fmt.Errorf("invalid module path %q: %w", modulePath, err)
			}
			// The derived default is not importable; fall back to a
			// local-only name, which go.mod accepts for main modules.
			modulePath = filepath.Base(dir)
		}

		if err := scaffold(dir, modulePath); err != nil {
			return err
		}

		fmt.Println("  Running go mod tidy...")
		tidy := exec.Command("go", "mod", "tidy")
		tidy.Dir = dir
		tidy.Stdout = os.Stdout
		tidy.Stderr = os.Stderr
		if err := tidy.Run(); err != nil {
			fmt.Println("  Warning: go mod tidy failed; run it manually inside the project")
		}

		fmt.Println()
		fmt.Println("Project created. Next steps:")
		fmt.Printf("  cd %s\n", dir)
		fmt.Println("  go run .                     # render sheet.yaml to frames/")
		fmt.Println("  sheetsnap render sheet.yaml  # same, via the CLI")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// defaultModulePath derives a module path for dir. Inside an existing
// module it appends dir's position to that module's path; otherwise it
// is the directory basename.
func defaultModulePath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	root, path := enclosingModule(filepath.Dir(abs))
	if path == "" {
		return filepath.Base(dir)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(dir)
	}
	return path + "/" + filepath.ToSlash(rel)
}

// enclosingModule walks up from dir looking for a go.mod and returns
// the module root and its module path, or empty strings.
func enclosingModule(dir string) (string, string) {
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			if path := modfile.ModulePath(data); path != "" {
				return dir, path
			}
			return "", ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

func scaffold(dir, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	fmt.Printf("Creating sheet preview project: %s\n", filepath.Base(dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := struct{ ModulePath string }{ModulePath: modulePath}
	files := []struct {
		name string
		tmpl string
	}{
		{"go.mod", goModTemplate},
		{"main.go", mainTemplate},
		{"sheet.yaml", scenarioTemplate},
	}
	for _, f := range files {
		t, err := template.New(f.name).Parse(f.tmpl)
		if err != nil {
			return fmt.Errorf("internal template error: %w", err)
		}
		var b strings.Builder
		if err := t.Execute(&b, data); err != nil {
			return fmt.Errorf("internal template error: %w", err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		fmt.Printf("  Created %s\n", path)
	}
	return nil
}

const goModTemplate = `module {{.ModulePath}}

go 1.24.0

require github.com/go-drift/sheet v0.0.0
`

const mainTemplate = `package main

import (
	"log"
	"os"
	"time"

	"github.com/go-drift/sheet/pkg/rendering"
	"github.com/go-drift/sheet/pkg/sheet"
	sheettest "github.com/go-drift/sheet/pkg/testing"
)

func main() {
	tester := sheettest.NewTester()
	defer tester.Cleanup()

	s := sheet.New("Remove photo?", "The photo will be removed from this album.")
	s.AddAction(sheet.NewAction("Remove", sheet.ActionStyleDestructive, nil))
	s.AddAction(sheet.NewAction("Cancel", sheet.ActionStyleCancel, nil))
	s.Show(tester.Host())

	if err := tester.PumpUntilSettled(10 * time.Second); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("presented.svg", rendering.EncodeSVG(tester.Frame()), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote presented.svg")
}
`

const scenarioTemplate = `# A sheetsnap scenario. Render it with:
#
#   sheetsnap render sheet.yaml
#
sheet:
  title: Remove photo?
  message: The photo will be removed from this album.
  actions:
    - title: Remove
      style: destructive
    - title: Cancel
      style: cancel
script:
  - settle:
  - capture: presented
  - press: Remove
  - capture: pressed
  - release: Remove
  - settle:
`
