package cli

import (
	"cyclels/internal/registry"
	"cyclels/internal/server"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

type options struct {
	logfile string
	verbose int
}

// NewRootCommand builds the cycle-ls command tree. Without a subcommand it
// runs the language server on stdio.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "cycle-ls",
		Short:        "Language server for cycle scripts",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(version)
		},
	}
	cmd.SetVersionTemplate("cycle-ls LSP server version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.logfile, "logfile", "", "Path to log file")
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity")

	cmd.AddCommand(
		newServeCommand(version),
		newCheckCommand(),
	)
	return cmd
}

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the language server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(version)
		},
	}
}

func runServe(version string) error {
	log := commonlog.GetLogger("cycle-ls")
	log.Infof("Starting cycle-ls LSP server %s...", version)
	ls, err := server.New(registry.Default(), version)
	if err != nil {
		return err
	}
	return ls.RunStdio()
}

// configureLogging sends logs to the log file when one is given; otherwise
// only warnings and worse reach stderr, which the client ignores.
func configureLogging(opts *options) {
	if opts.logfile == "" {
		commonlog.Configure(opts.verbose, nil)
		return
	}
	commonlog.Configure(2+opts.verbose, &opts.logfile)
}
