package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pravya",
	Short: "Narrative quiz-game backend",
	Long: "Pravya — LLM-narrated quiz-game backend that serves programming questions\n" +
		"wrapped in an interactive story and tracks player progression per session.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is normal outside local development.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db-driver", "", "Database driver: sqlite or postgres (overrides PRAVYA_DB_DRIVER)")
	rootCmd.PersistentFlags().String("db-dsn", "", "Database DSN (overrides PRAVYA_DB_DSN)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(masteriesCmd)
	rootCmd.AddCommand(versionCmd)
}
