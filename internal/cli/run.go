package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/solid/internal/demo"
	"github.com/mesh-intelligence/solid/internal/paths"
)

type runResultJSON struct {
	Principle string   `json:"principle"`
	Lines     []string `json:"lines"`
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [principle...]",
		Short: "Run principle walkthroughs",
		Long: `Run the walkthrough for each named principle, or for all of them when
no name is given. Inputs come from config.yaml and SOLID_* environment variables.

Valid principles: ` + strings.Join(demo.Names(), ", ") + `

Example:
  solid run lsp
  solid run isp dip --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, flags, args)
		},
	}
}

func runRun(cmd *cobra.Command, flags *rootFlags, args []string) error {
	names := args
	if len(names) == 0 {
		names = demo.Names()
	}
	// Reject unknown names before producing any output.
	for _, name := range names {
		if _, err := demo.Lookup(name); err != nil {
			return userError(err)
		}
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return classify(err)
	}

	results := make([]runResultJSON, 0, len(names))
	for _, name := range names {
		var buf bytes.Buffer
		if err := demo.Run(&buf, cfg, name); err != nil {
			return classify(err)
		}
		p, _ := demo.Lookup(name)
		results = append(results, runResultJSON{
			Principle: p.Name,
			Lines:     strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"),
		})
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal results: %w", err))
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		p, _ := demo.Lookup(r.Principle)
		fmt.Fprintf(out, "== %s ==\n", p.Title)
		for _, l := range r.Lines {
			fmt.Fprintln(out, l)
		}
	}
	return nil
}

// classify marks bad input as a user error and everything else as a system
// error.
func classify(err error) error {
	switch {
	case errors.Is(err, demo.ErrUnknownPrinciple),
		errors.Is(err, demo.ErrDimensionNegative),
		errors.Is(err, demo.ErrDimensionNotFinite),
		errors.Is(err, demo.ErrBurgersInvalid),
		errors.Is(err, demo.ErrUsernameEmpty):
		return userError(err)
	default:
		return sysError(err)
	}
}
