package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"strategy-builder/internal/builder"
	"strategy-builder/internal/errors"
	"strategy-builder/internal/logging"
)

func newIndicatorsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "List the indicator catalog",
		Example: `  builder indicators
  builder indicators --category Momentum`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			category, _ := cmd.Flags().GetString("category")

			if app.Catalog.Len() == 0 {
				output.Warn("Indicator catalog is empty")
				return nil
			}

			if output.IsJSON() {
				return output.JSON(app.Catalog.Definitions())
			}

			grouped := app.Catalog.GroupByCategory()
			for _, cat := range app.Catalog.Categories() {
				if category != "" && category != cat {
					continue
				}
				output.Bold("%s", cat)
				for _, def := range grouped[cat] {
					output.Printf("  %-12s %s", def.ID, def.Label)
					if len(def.Parameters) > 0 {
						output.Printf(" %s", output.Dim(fmt.Sprintf("(%d params)", len(def.Parameters))))
					}
					output.Println()
				}
			}
			return nil
		},
	}

	cmd.Flags().String("category", "", "only show one category")
	return cmd
}

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <draft.json>",
		Short: "Validate a strategy draft file",
		Long: `Validate a draft against the builder's validation rules and print
every failure. A draft with no failures is eligible for submission.`,
		Example: `  builder validate my-strategy.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			draft, err := builder.LoadDraftFile(args[0])
			if err != nil {
				output.Error("%v", err)
				return err
			}

			failures := builder.Validate(draft)
			logging.LogValidation(app.Logger, draft.Name, failures)

			if output.IsJSON() {
				return output.JSON(map[string]any{"failures": failures, "valid": len(failures) == 0})
			}

			if len(failures) == 0 {
				output.Success("Draft %q is valid", draft.Name)
				return nil
			}
			output.Error("Draft has %d issue(s):", len(failures))
			for _, msg := range failures {
				output.Printf("  - %s\n", msg)
			}
			return errors.ErrDraftInvalid
		},
	}
}

func newSubmitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <draft.json>",
		Short: "Assemble a draft and submit it",
		Long: `Validate a draft, assemble the canonical strategy specification, and
submit it to the persistence service. The submission is a single
one-shot request; on failure the draft file is left untouched so it can
be resubmitted manually.`,
		Example: `  builder submit my-strategy.json --user u-42
  builder submit my-strategy.json --paper=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			draft, err := builder.LoadDraftFile(args[0])
			if err != nil {
				output.Error("%v", err)
				return err
			}

			userID, _ := cmd.Flags().GetString("user")
			if userID == "" {
				userID = app.Config.Submission.UserID
			}
			if userID == "" {
				output.Error("No user id; pass --user or set submission.user_id")
				return errors.ErrConfigInvalid
			}

			paper := app.Config.Trading.PaperDefault
			if cmd.Flags().Changed("paper") {
				paper, _ = cmd.Flags().GetBool("paper")
			}

			session := builder.ResumeSession(draft, app.Catalog, app.Logger)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			ack, err := session.Submit(ctx, app.Submitter, userID, paper)
			if err != nil {
				var verr *errors.ValidationError
				if errors.As(err, &verr) {
					output.Error("Draft has %d issue(s):", len(verr.Failures))
					for _, msg := range verr.Failures {
						output.Printf("  - %s\n", msg)
					}
					return err
				}
				output.Error("Submission failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(ack)
			}
			output.Success("Strategy %q submitted (record %s)", draft.Name, ack.ID)
			return nil
		},
	}

	cmd.Flags().String("user", "", "submitting user id")
	cmd.Flags().Bool("paper", true, "submit as paper trading")
	return cmd
}
