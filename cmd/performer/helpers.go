package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var helpersCmd = &cobra.Command{
	Use:   "helpers",
	Short: "Inspect the capability registry",
}

var helpersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every operation and who provides it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		project := openProject(context.Background())
		defer project.Close()

		reg := project.Wiring.Registry()
		for _, name := range reg.Operations() {
			provider, err := reg.Provider(name)
			if err != nil {
				fatal("Error resolving operation", err)
			}
			fmt.Printf("%-28s %s\n", name, provider)
		}
	},
}

var helpersCallCmd = &cobra.Command{
	Use:   "call [operation] [args...]",
	Short: "Call an operation of the registry",
	Long: `Call resolves an operation the way performers do: native operations, routes,
rendering helpers, then custom modules. Numeric arguments are passed as numbers.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		project := openProject(context.Background())
		defer project.Close()

		out, err := project.Wiring.Registry().Call(args[0], parseArgs(args[1:])...)
		if err != nil {
			fatal("Error calling "+args[0], err)
		}
		fmt.Println(out)
	},
}

func parseArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, s := range raw {
		if n, err := strconv.Atoi(s); err == nil {
			args[i] = n
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			args[i] = f
		} else {
			args[i] = s
		}
	}
	return args
}

func init() {
	rootCmd.AddCommand(helpersCmd)
	helpersCmd.AddCommand(helpersListCmd, helpersCallCmd)
}
