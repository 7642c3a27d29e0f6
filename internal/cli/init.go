package cli

import (
	"os"
	"path/filepath"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/output"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold the workspace directories (fragments, scrolls, logs, seed packets)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if baseDirOverride != "" {
			cfg.BaseDir = baseDirOverride
		}

		dirs := []string{
			filepath.Dir(cfg.SeedPath()),
			cfg.FragmentsPath(),
			cfg.ScrollsPath(),
			cfg.LogsPath(),
		}

		count := 0
		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0755); err != nil {
				output.Logger.Error("Failed to create directory", "dir", dir, "error", err)
				continue
			}
			output.Logger.Info("Directory ready", "dir", dir)
			count++
		}

		output.Logger.Info("Workspace scaffolding complete", "total_dirs", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&baseDirOverride, "base-dir", "", "Project root directory")
}
