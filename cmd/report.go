package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bulmaswatch/swatchport/color"
	"github.com/bulmaswatch/swatchport/icon"
	"github.com/bulmaswatch/swatchport/report"
	"github.com/bulmaswatch/swatchport/style"
	"github.com/bulmaswatch/swatchport/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	reportCmd.SetOut(os.Stdout)
}

// reportCmd shows the summary of the most recent run.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the summary of the last migration run",
	Run: func(cmd *cobra.Command, args []string) {
		last, err := report.Last()
		handleErr(err)

		run, ok := last.Get()
		if !ok {
			cmd.Printf("%s no run recorded yet\n", icon.Get(icon.Question))
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(run))
			return
		}

		cmd.Println(style.Faint(fmt.Sprintf("Run of %s", run.Started.Format(time.RFC1123))))
		printReport(cmd, run)
	},
}

var statusIcons = map[report.Status]func() string{
	report.Succeeded: func() string { return style.Fg(color.Green)(icon.Get(icon.Success)) },
	report.Skipped:   func() string { return style.Fg(color.Yellow)(icon.Get(icon.Skip)) },
	report.Failed:    func() string { return style.Fg(color.Red)(icon.Get(icon.Fail)) },
}

func wrapWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return util.Max(width-4, 20)
}

func printReport(cmd *cobra.Command, run *report.Report) {
	width := wrapWidth()
	indent := func(s string) string {
		return "    " + strings.ReplaceAll(wordwrap.String(s, width), "\n", "\n    ")
	}

	for _, theme := range run.Themes {
		cmd.Printf("%s %s\n", statusIcons[theme.Status](), theme.Name)

		for _, warning := range theme.Warnings {
			cmd.Println(style.Fg(color.Yellow)(indent(warning)))
		}
		if theme.Error != "" && theme.Status == report.Failed {
			cmd.Println(style.Fg(color.Red)(indent(theme.Error)))
		}
	}

	for _, fileErr := range run.FileErrors {
		cmd.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.File)), indent(fileErr.Error()))
	}
	for _, note := range run.Notes {
		cmd.Printf("%s %s\n", style.Fg(color.Blue)(icon.Get(icon.Skip)), wordwrap.String(note, width))
	}
	for _, e := range run.Errors {
		cmd.Printf("%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), wordwrap.String(e, width))
	}

	cmd.Println()
	cmd.Printf(
		"%s %s, %s, %s in %s\n",
		icon.Get(icon.Theme),
		style.Fg(color.Green)(fmt.Sprintf("%d migrated", run.Count(report.Succeeded))),
		style.Fg(color.Yellow)(fmt.Sprintf("%d skipped", run.Count(report.Skipped))),
		style.Fg(color.Red)(fmt.Sprintf("%d failed", run.Count(report.Failed))),
		run.Duration().Round(time.Millisecond),
	)
	cmd.Println(style.Faint(run.Output))
}
