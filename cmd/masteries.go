package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var masteriesCmd = &cobra.Command{
	Use:   "masteries",
	Short: "List the distinct masteries in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, _, err := openStore(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		masteries, err := st.Questions().Masteries(ctx)
		if err != nil {
			return fmt.Errorf("list masteries: %w", err)
		}
		if len(masteries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No questions seeded yet. Run: pravya seed <bank.json>")
			return nil
		}
		for _, m := range masteries {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}
