// Package cmd implements the command-line interface for swatchport.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bulmaswatch/swatchport/color"
	"github.com/bulmaswatch/swatchport/constant"
	"github.com/bulmaswatch/swatchport/icon"
	"github.com/bulmaswatch/swatchport/key"
	"github.com/bulmaswatch/swatchport/log"
	"github.com/bulmaswatch/swatchport/migrate"
	"github.com/bulmaswatch/swatchport/report"
	"github.com/bulmaswatch/swatchport/style"
	"github.com/bulmaswatch/swatchport/util"
	"github.com/bulmaswatch/swatchport/where"
	cc "github.com/ivanpirog/coloredcobra"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., plain, emoji, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("legacy", "l", "", "Directory holding the legacy themes")
	lo.Must0(viper.BindPFlag(key.PathsLegacyThemes, rootCmd.PersistentFlags().Lookup("legacy")))

	rootCmd.PersistentFlags().StringP("output", "o", "", "Directory the generated themes are written to")
	lo.Must0(viper.BindPFlag(key.PathsOutput, rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.Flags().StringP("utilities", "u", "", "Shared utilities directory")
	lo.Must0(viper.BindPFlag(key.PathsUtilities, rootCmd.Flags().Lookup("utilities")))

	rootCmd.Flags().Bool("no-utilities", false, "Do not copy the utilities directory")
	rootCmd.Flags().Bool("no-report", false, "Do not remember this run")

	rootCmd.SetOut(os.Stdout)
}

// rootCmd migrates every legacy theme, or the ones named as arguments.
var rootCmd = &cobra.Command{
	Use:   constant.Swatchport + " [themes...]",
	Short: "Migrate legacy Bootswatch themes to the Bulma 1.x layout",
	Long: style.Bold(constant.Swatchport) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Migrate legacy Bootswatch themes to the Bulma 1.x layout"),
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completionThemes,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		opts := migrate.DefaultOptions()
		opts.Themes = args
		if lo.Must(cmd.Flags().GetBool("no-utilities")) {
			opts.CopyUtilities = false
		}
		if lo.Must(cmd.Flags().GetBool("no-report")) {
			opts.SaveReport = false
		}

		var erase func()
		opts.OnTheme = func(index, total int, name string) {
			if erase != nil {
				erase()
			}
			erase = util.PrintErasable(fmt.Sprintf("%s [%d/%d] %s", icon.Get(icon.Progress), index+1, total, name))
		}

		run, err := migrate.Run(opts)
		if erase != nil {
			erase()
		}

		var unknown *migrate.UnknownThemeError
		if errors.As(err, &unknown) {
			handleErr(errUnknownTheme(unknown))
		}
		handleErr(err)

		printReport(cmd, run)

		if run.Count(report.Failed) > 0 {
			os.Exit(1)
		}
	},
}

// errUnknownTheme suggests the closest existing theme.
func errUnknownTheme(err *migrate.UnknownThemeError) error {
	if len(err.Known) == 0 {
		return err
	}

	closest := lo.MinBy(err.Known, func(a, b string) bool {
		return levenshtein.Distance(err.Name, a) < levenshtein.Distance(err.Name, b)
	})

	return fmt.Errorf(
		"unknown theme %s, did you mean %s?",
		style.Fg(color.Red)(err.Name),
		style.Fg(color.Yellow)(closest),
	)
}

func completionThemes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	themes, err := migrate.Discover(where.LegacyThemes())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return themes, cobra.ShellCompDirectiveNoFileComp
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
