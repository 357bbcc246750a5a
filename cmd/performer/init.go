package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/performer/internal/platform"
)

var (
	initLocale   string
	initCurrency string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a performer project in the current directory",
	Long: `Creates .performer/ with empty helpers/ and performers/ directories and writes
performer.yaml. An existing performer.yaml is left untouched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		for _, dir := range []string{"helpers", "performers"} {
			if err := os.MkdirAll(filepath.Join(cwd, platform.DefaultSystemDir, dir), 0755); err != nil {
				fatal("Failed to create project directories", err)
			}
		}

		configPath := filepath.Join(cwd, platform.ConfigFileName)
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			cfg := platform.FileConfig{
				Adapter:  platform.DefaultAdapter,
				Locale:   initLocale,
				Currency: initCurrency,
			}
			if adapter != "" {
				cfg.Adapter = adapter
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				fatal("Failed to encode config", err)
			}
			if err := os.WriteFile(configPath, data, 0644); err != nil {
				fatal("Failed to write config", err)
			}
		}

		fmt.Println("Initialized performer project in", cwd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initLocale, "locale", "en-US", "Locale used to format prices")
	initCmd.Flags().StringVar(&initCurrency, "currency", "USD", "ISO 4217 currency code")
}
