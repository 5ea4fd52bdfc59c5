package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eden-eldith/trialhex/internal/config"
	"github.com/eden-eldith/trialhex/internal/ledger"
)

// NewHistoryCmd creates the history command, listing past runs from the
// ledger
func NewHistoryCmd(app *App) *cobra.Command {
	var ledgerPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent review runs from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ledgerPath
			if path == "" {
				cfg, err := config.LoadConfig(".")
				if err != nil {
					return err
				}
				path = cfg.LedgerPath
			}
			if path == "" {
				return fmt.Errorf("no ledger configured: pass --ledger or set it in .trialhex.yaml")
			}

			led, err := ledger.Open(path)
			if err != nil {
				return err
			}
			defer led.Close()

			runs, err := led.RecentRuns(limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "No runs recorded")
				return nil
			}

			for _, r := range runs {
				verdict := r.Verdict
				if verdict == "" {
					verdict = "-"
				}
				fmt.Fprintf(w, "%s  %-30s %-8s %2d/%-2d  %s\n",
					r.StartedAt.Format("2006-01-02 15:04"),
					r.Document, r.ReviewerSet,
					r.SuccessCount, r.ReviewerCount, verdict)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "SQLite ledger file")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to show")

	return cmd
}
