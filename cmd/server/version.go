package main

import (
	"encoding/json"
	"fmt"

	"github.com/myasir/portfolio-api/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if !asJSON {
			fmt.Printf("portfolio-api %s\n", version.Info())
			return nil
		}

		out, err := json.MarshalIndent(version.GetBuildInfo(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Print build information as JSON")
}
