package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
	"github.com/tacogips/fwversion/internal/resolver"
	"github.com/tacogips/fwversion/internal/semver"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved version without writing anything",
		Long: `Resolve the firmware version and print every value with its origin.

Examples:
  fwversion show
  fwversion show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, FlagJSON, false, "Output as JSON")
	return cmd
}

// ShowInfo is the JSON form of "fwversion show".
type ShowInfo struct {
	*resolver.Resolution
	Describe string       `json:"describe"`
	Numeric  *NumericInfo `json:"numeric,omitempty"`
	ParseErr string       `json:"parse_error,omitempty"`
}

// NumericInfo holds the packed numeric constants of a version.
type NumericInfo struct {
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Patch      int    `json:"patch"`
	Tweak      string `json:"tweak"`
	Number     string `json:"number"`
	AppVersion string `json:"app_version"`
}

func runShow(cmd *cobra.Command, root *rootOptions, asJSON bool) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	result, err := app.Show(cmd.Context(), app.ShowOptions{
		Config: cfg,
		Deps:   root.deps,
	})
	if err != nil {
		return err
	}

	info := ShowInfo{
		Resolution: result.Resolution,
		Describe:   result.Describe.Value,
	}
	if result.Parsed != nil {
		info.Numeric = numericInfo(*result.Parsed)
	} else if result.ParseErr != nil {
		info.ParseErr = result.ParseErr.Error()
	}

	if asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	drawShowTable(cmd, root.out, info)
	return nil
}

func numericInfo(v semver.Version) *NumericInfo {
	return &NumericInfo{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Tweak:      v.Tweak,
		Number:     semver.Hex(v.Number()),
		AppVersion: semver.Hex(v.AppVersion()),
	}
}

func drawShowTable(cmd *cobra.Command, out *output, info ShowInfo) {
	out.printHeader("Firmware version")

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Field", "Value", "Origin"})

	res := info.Resolution
	t.AppendRow(table.Row{"Version", res.Version.Text, formatOrigin(out, res.Version)})
	t.AppendRow(table.Row{"Base version", res.BaseVersion.Text, formatOrigin(out, res.BaseVersion)})
	t.AppendRow(table.Row{"Branch", res.Branch.Text, formatOrigin(out, res.Branch)})
	t.AppendRow(table.Row{"Short hash", res.ShortHash.Text, formatOrigin(out, res.ShortHash)})
	t.AppendRow(table.Row{"Build timestamp", res.Timestamp.Text, formatOrigin(out, res.Timestamp)})
	t.AppendRow(table.Row{"Dogfood", strconv.FormatBool(res.Dogfood), ciSummary(res.CIVariables)})
	t.AppendRow(table.Row{"Describe", info.Describe, "scm"})

	t.AppendSeparator()
	if n := info.Numeric; n != nil {
		t.AppendRow(table.Row{"APP_VERSION_NUMBER", n.Number, ""})
		t.AppendRow(table.Row{"APPVERSION", n.AppVersion, ""})
		t.AppendRow(table.Row{"Major.Minor.Patch", fmt.Sprintf("%d.%d.%d", n.Major, n.Minor, n.Patch), ""})
		t.AppendRow(table.Row{"Tweak", n.Tweak, ""})
	} else {
		t.AppendRow(table.Row{"Numeric", out.paint(text.FgRed, info.ParseErr), ""})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func formatOrigin(out *output, v resolver.Value) string {
	if v.Defaulted() {
		return out.paint(text.FgYellow, string(v.Origin))
	}
	return string(v.Origin)
}

func ciSummary(vars []string) string {
	if len(vars) == 0 {
		return "no CI variables"
	}
	return "CI: " + strings.Join(vars, ", ")
}
