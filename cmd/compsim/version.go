package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"compsim/internal/diagfmt"
	"compsim/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show compsim build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		switch strings.ToLower(versionFormat) {
		case "json":
			return diagfmt.EncodeJSON(cmd.OutOrStdout(), versionPayload{
				Tool:      "compsim",
				Version:   version.Version,
				GitCommit: strings.TrimSpace(version.GitCommit),
				BuildDate: strings.TrimSpace(version.BuildDate),
			}, true)
		case "pretty":
			colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
			colored, err := resolveColor(colorFlag, os.Stdout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String(colored))
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}
