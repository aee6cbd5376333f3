package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"

	"cyclels/internal/config"
	"cyclels/internal/registry"
	"cyclels/internal/scanner"
	"cyclels/internal/script"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// ErrProblemsFound is returned by check when any script has diagnostics.
var ErrProblemsFound = errors.New("problems found")

func newCheckCommand() *cobra.Command {
	var (
		configPath string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Validate cycle scripts and print their problems",
		Long: "Validate cycle scripts and print their problems. Directories are walked " +
			"for files with one of the configured extensions.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				f, err := os.Open(configPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if cfg, err = config.LoadFromJSON(f); err != nil {
					return fmt.Errorf("failed to load %s: %w", configPath, err)
				}
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cfg, workers, args)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Files validated in parallel")
	return cmd
}

func runCheck(
	ctx context.Context,
	out io.Writer,
	cfg config.Config,
	workers int,
	paths []string,
) error {
	checker, err := script.NewChecker(registry.Default())
	if err != nil {
		return err
	}

	var mu sync.Mutex
	reports := map[string][]script.Diagnostic{}
	collect := func(path string, document []byte) {
		diagnostics := checker.Check(string(document))
		if limit := cfg.MaxNumberOfProblems; limit > 0 && len(diagnostics) > limit {
			diagnostics = diagnostics[:limit]
		}
		mu.Lock()
		defer mu.Unlock()
		reports[path] = diagnostics
	}

	// Arguments are reported in the order given; files found under a
	// directory follow in path order.
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		if !info.IsDir() {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}
			collect(path, data)
			files = append(files, path)
			continue
		}

		var found []string
		skip := scanner.HasExtension(cfg.FileExtensions...)
		err = scanner.Scan(ctx, path, workers, skip, func(file string, document []byte) {
			collect(file, document)
			mu.Lock()
			defer mu.Unlock()
			found = append(found, file)
		})
		if err != nil {
			return err
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	problems := report(out, files, reports)
	if problems > 0 {
		return fmt.Errorf("%w: %d problem(s) in %d file(s)", ErrProblemsFound, problems, len(files))
	}
	return nil
}

// report prints one line per diagnostic with 1-based line and column.
func report(out io.Writer, files []string, reports map[string][]script.Diagnostic) int {
	r := lipgloss.NewRenderer(out)
	pathStyle := r.NewStyle().Bold(true)
	errorStyle := r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	problems := 0
	for _, path := range files {
		for _, d := range reports[path] {
			fmt.Fprintf(out, "%s:%d:%d: %s %s\n",
				pathStyle.Render(path),
				d.Range.Start.Line+1,
				d.Range.Start.Character+1,
				errorStyle.Render("error:"),
				d.Message,
			)
			problems++
		}
	}
	return problems
}
