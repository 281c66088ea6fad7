package version

import (
	"encoding/json"
	"fmt"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/spf13/cobra"
)

// NewCommand creates a version command that prints info as labels on the
// Console returned by console (cliout.Default when nil). outputFormat is an
// optional pointer to a global output format flag; "json" prints the raw
// Info instead.
func NewCommand(info *Info, outputFormat *string, console func() *cliout.Console) *cobra.Command {
	if console == nil {
		console = cliout.Default
	}

	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console()
			out := c.Writer()

			format := ""
			if outputFormat != nil {
				format = *outputFormat
			}

			if format == "json" {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			if quiet {
				_, err := fmt.Fprintln(out, info.Version)
				return err
			}

			c.Section("%s Version", info.Name)
			c.Item("Version: %s", info.Version)
			c.Item("Build Date: %s", info.BuildDate)
			c.Item("Git Commit: %s", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
