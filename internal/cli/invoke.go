/*
PURPOSE:
  Defines the 'invoke' subcommand.
  Executes one full invocation: credential, prompt, API call, persistence.

REQUIREMENTS:
  User-specified:
  - One run per execution; no retries, no concurrency.
  - Specific flags for overriding config paths and the model name.

  Implementation-discovered:
  - Need to load config first, then apply flag overrides.
  - The credential is resolved here and handed to the engine explicitly,
    so no package ever reads the key from ambient process state.

ARCHITECTURE INTEGRATION:
  - Calls: internal/credential, internal/engine
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load, credential load, or the run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Ensure Credential -> Engine.Run.

USAGE:
  scroll-runner invoke --model gpt-4o --fragments ./motd_fragments

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"context"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/credential"
	"github.com/solaria/scroll-runner/internal/engine"
	"github.com/spf13/cobra"
)

var (
	baseDirOverride   string
	seedOverride      string
	fragmentsOverride string
	scrollsOverride   string
	logsOverride      string
	envFileOverride   string
	modelOverride     string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run one invocation and persist the scroll",
	Long: `Executes a single invocation:
1. Credential: loads the OpenAI API key from the .env store, prompting to create it on first run.
2. Assembly: reads the seed packet and one randomly chosen MOTD fragment.
3. Invocation: sends the persona + prompt pair to the chat-completion model.
4. Persistence: writes SCROLL_<id>.md, log_<id>.json, and an invocation ledger row.

Any missing credential, missing seed packet, or API failure aborts the run
with a non-zero exit; a failed run leaves no scroll or record behind.`,
	Example: `  # Run with defaults (uses scroll_runner.yaml if present)
  scroll-runner invoke

  # Override the model and fragment directory
  scroll-runner invoke --model gpt-4o --fragments ./motd_fragments

  # Run against a different project root
  scroll-runner invoke --base-dir ~/solaria`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if baseDirOverride != "" {
			cfg.BaseDir = baseDirOverride
		}
		if seedOverride != "" {
			cfg.SeedPacket = seedOverride
		}
		if fragmentsOverride != "" {
			cfg.FragmentsDir = fragmentsOverride
		}
		if scrollsOverride != "" {
			cfg.ScrollsDir = scrollsOverride
		}
		if logsOverride != "" {
			cfg.LogsDir = logsOverride
		}
		if envFileOverride != "" {
			cfg.EnvFile = envFileOverride
		}
		if modelOverride != "" {
			cfg.Model = modelOverride
		}

		// 3. Credential
		key, err := credential.New(cfg.EnvPath()).Ensure()
		if err != nil {
			return err
		}

		// 4. Execution
		return engine.New(cfg, key).Run(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringVar(&baseDirOverride, "base-dir", "", "Project root directory (content paths resolve against it)")
	invokeCmd.Flags().StringVarP(&seedOverride, "seed", "s", "", "Path to the seed packet (relative to base dir)")
	invokeCmd.Flags().StringVarP(&fragmentsOverride, "fragments", "f", "", "Directory of MOTD fragments (relative to base dir)")
	invokeCmd.Flags().StringVar(&scrollsOverride, "scrolls-dir", "", "Output directory for scrolls (relative to base dir)")
	invokeCmd.Flags().StringVar(&logsOverride, "logs-dir", "", "Output directory for metadata records (relative to base dir)")
	invokeCmd.Flags().StringVar(&envFileOverride, "env-file", "", "Path to the credential store (relative to base dir)")
	invokeCmd.Flags().StringVarP(&modelOverride, "model", "m", "", "Chat-completion model name")
}
