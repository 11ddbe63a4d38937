package cmd

import (
	"fmt"
	"os"

	"github.com/bulmaswatch/swatchport/color"
	"github.com/bulmaswatch/swatchport/icon"
	"github.com/bulmaswatch/swatchport/migrate"
	"github.com/bulmaswatch/swatchport/style"
	"github.com/bulmaswatch/swatchport/util"
	"github.com/bulmaswatch/swatchport/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(materializeCmd)
	materializeCmd.Flags().StringP("manifest", "m", "", "Manifest to read instead of the configured one")
	materializeCmd.SetOut(os.Stdout)
}

// materializeCmd writes the output tree from an existing manifest.
var materializeCmd = &cobra.Command{
	Use:   "materialize",
	Short: "Write the generated themes from an existing manifest",
	Long:  "Write the generated themes from an existing manifest without reading the legacy themes again.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("manifest")
		if path == "" {
			path = where.Manifest()
		}

		result, err := migrate.Materialize(path, where.Output())
		handleErr(err)

		for _, failed := range result.Failed {
			cmd.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), failed.Error())
		}

		cmd.Printf(
			"%s wrote %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(len(result.Written), "file", "files"),
			where.Output(),
		)

		if !result.OK() {
			handleErr(fmt.Errorf("%s could not be written", util.Quantify(len(result.Failed), "file", "files")))
		}
	},
}
