package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/performer/pkg/adapters/lifecycle"
	"github.com/aretw0/performer/pkg/article"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print article changes as they happen",
	Long:  `Watch follows article documents and prints one line per change until interrupted. Only the fs adapter supports watching.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		project := openProject(ctx)
		defer project.Close()

		events, err := project.Articles.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		src := lifecycle.NewSource(article.IDPrefix, events)
		if err := src.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		fmt.Fprintln(os.Stderr, "Watching articles... (Ctrl+C to stop)")
		for e := range src.Events() {
			fmt.Println(e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
