/*
PURPOSE:
  Defines the 'list-fragments' subcommand.
  Helps debug fragment discovery before a run.

REQUIREMENTS:
  User-specified:
  - List the MOTD fragments an invocation could pick from.

  Implementation-discovered:
  - Useful validation step before a full invoke.

ARCHITECTURE INTEGRATION:
  - Calls: internal/prompt.ListFragments()

ERROR HANDLING:
  - Prints error if the fragment directory is unreadable.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  scroll-runner list-fragments --fragments ./motd_fragments

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/prompt/assembler.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/prompt"
	"github.com/spf13/cobra"
)

var listFragmentsCmd = &cobra.Command{
	Use:   "list-fragments",
	Short: "List MOTD fragments available for selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if baseDirOverride != "" {
			cfg.BaseDir = baseDirOverride
		}
		if fragmentsOverride != "" {
			cfg.FragmentsDir = fragmentsOverride
		}

		names, err := prompt.ListFragments(cfg.FragmentsPath(), cfg.FragmentExt)
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Printf("No fragments found in %s (an invocation would use an empty fragment).\n", cfg.FragmentsPath())
			return nil
		}

		fmt.Printf("Fragments in %s:\n", cfg.FragmentsPath())
		for _, name := range names {
			fmt.Printf("- %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listFragmentsCmd)
	listFragmentsCmd.Flags().StringVar(&baseDirOverride, "base-dir", "", "Project root directory")
	listFragmentsCmd.Flags().StringVarP(&fragmentsOverride, "fragments", "f", "", "Directory of MOTD fragments")
}
