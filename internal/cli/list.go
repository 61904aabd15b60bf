package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/solid/internal/demo"
)

type principleJSON struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Definition string `json:"definition"`
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the principles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if flags.jsonMode {
				items := make([]principleJSON, len(demo.Principles))
				for i, p := range demo.Principles {
					items[i] = principleJSON{Name: p.Name, Title: p.Title, Definition: p.Definition}
				}
				data, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return sysError(fmt.Errorf("marshal principles: %w", err))
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, p := range demo.Principles {
				fmt.Fprintf(out, "%-4s %-22s %s\n", p.Name, p.Title, p.Definition)
			}
			return nil
		},
	}
}
