package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eden-eldith/trialhex/internal/registry"
)

// NewReviewersCmd creates the reviewers command
func NewReviewersCmd(app *App) *cobra.Command {
	var set string
	var registryPath string

	cmd := &cobra.Command{
		Use:   "reviewers",
		Short: "List the reviewer roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var specs []registry.ReviewerSpec
			var err error
			if registryPath != "" {
				specs, err = registry.Load(registryPath)
			} else {
				specs, err = registry.Set(set)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, s := range specs {
				fmt.Fprintf(w, "%2d. %s\n", i+1, s.Name)
				fmt.Fprintf(w, "    id: %s\n", s.ID)
				fmt.Fprintf(w, "    primary: %s\n", s.Models[0])
				if len(s.Models) > 1 {
					fmt.Fprintf(w, "    fallbacks: %d\n", len(s.Models)-1)
				}
				if app.verbose {
					fmt.Fprintf(w, "    persona: %s\n", truncatePersona(s.Persona, 100))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", registry.SetStandard,
		"Reviewer set: standard (6) or plus (12)")
	cmd.Flags().StringVar(&registryPath, "registry", "",
		"YAML file with a custom reviewer roster")

	return cmd
}

// truncatePersona shortens a persona to its first line, capped at n runes
func truncatePersona(persona string, n int) string {
	for i, r := range persona {
		if r == '\n' || i >= n {
			return persona[:i] + "..."
		}
	}
	return persona
}
