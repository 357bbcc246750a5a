package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/performer"
)

var (
	verbose  bool
	adapter  string
	rootDir  string
	readOnly bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "performer",
	Short: "Articles with presentation kept out of the record",
	Long: `performer stores articles and renders their derived values (author first name,
links, prices) through performers wired to a capability registry at startup.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter (fs, sqlite); defaults to performer.yaml or fs")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root; defaults to the nearest directory with .performer or performer.yaml")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Reject every write")
}

// openProject locates the project root and opens it. Failure is fatal.
func openProject(ctx context.Context) *performer.Project {
	root := rootDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fatal("Error getting working directory", err)
		}
		root, err = performer.FindRoot(wd)
		if err != nil {
			fatal("Error: not a performer project (run 'performer init')", err)
		}
	}

	opts := []performer.Option{
		performer.WithLogger(slog.Default()),
		performer.WithMustExist(true),
		performer.WithReadOnly(readOnly),
	}
	if adapter != "" {
		opts = append(opts, performer.WithAdapter(adapter))
	}

	project, err := performer.Open(ctx, root, opts...)
	if err != nil {
		fatal("Error opening project", err)
	}
	return project
}
