package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

var seedCmd = &cobra.Command{
	Use:   "seed <bank.json>",
	Short: "Load a JSON question bank into the database",
	Long: "Reads a JSON array of questions and upserts them by id, so re-running\n" +
		"a seed updates existing rows instead of duplicating them.",
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read bank: %w", err)
	}
	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return fmt.Errorf("parse bank: %w", err)
	}

	st, _, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	repo := st.Questions()
	for i, q := range questions {
		if q.ID == "" || q.Mastery == "" || q.QuestionText == "" {
			return fmt.Errorf("bank entry %d: id, mastery and question_text are required", i)
		}
		if q.DifficultyLevel == "" {
			q.DifficultyLevel = question.TierMedium
		}
		if err := repo.Upsert(ctx, q); err != nil {
			return fmt.Errorf("upsert %s: %w", q.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d questions.\n", len(questions))
	return nil
}
