package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/icon"
	"github.com/bulmaswatch/swatchport/report"
	"github.com/bulmaswatch/swatchport/util"
	"github.com/bulmaswatch/swatchport/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a generated artifact that can be removed.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func deletePath(location func() string) func() error {
	return func() error {
		if exists, _ := filesystem.API().Exists(location()); !exists {
			return nil
		}
		return util.Delete(location())
	}
}

var clearTargets = []clearTarget{
	{"output directory", "output", mo.Some("o"), deletePath(where.Output)},
	{"manifest", "manifest", mo.Some("m"), deletePath(where.Manifest)},
	{"logs", "logs", mo.Some("l"), deletePath(where.Logs)},
	{"last report", "report", mo.Some("r"), report.Forget},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// clearCmd removes generated output and stored run data.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove generated themes, the manifest, logs or the last report",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			names := lo.Map(selected, func(target clearTarget, _ int) string { return target.name })

			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", joinNames(names)),
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}

func joinNames(names []string) string {
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
