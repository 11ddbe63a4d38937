package cmd

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bulmaswatch/swatchport/color"
	"github.com/bulmaswatch/swatchport/constant"
	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/icon"
	"github.com/bulmaswatch/swatchport/migrate"
	"github.com/bulmaswatch/swatchport/style"
	"github.com/bulmaswatch/swatchport/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.Flags().BoolP("raw", "r", false, "Print only theme names")
	themesCmd.SetOut(os.Stdout)
}

// themesCmd lists the legacy themes, optionally filtered by a fuzzy query.
var themesCmd = &cobra.Command{
	Use:   "themes [filter]",
	Short: "List the legacy themes available for migration",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := where.LegacyThemes()
		themes, err := migrate.Discover(root)
		handleErr(err)

		if len(args) == 1 {
			ranks := fuzzy.RankFindFold(args[0], themes)
			sort.Sort(ranks)
			themes = lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
		}

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, theme := range themes {
				cmd.Println(theme)
			}
			return
		}

		fs := filesystem.API()
		fragment := func(dir, name string) string {
			if exists, _ := fs.Exists(filepath.Join(dir, name)); exists {
				return style.Fg(color.Green)(name)
			}
			return style.Faint(name)
		}

		for _, theme := range themes {
			dir := filepath.Join(root, theme)
			cmd.Printf(
				"%s %s %s %s\n",
				icon.Get(icon.Theme),
				style.Bold(theme),
				fragment(dir, constant.VariablesFragment),
				fragment(dir, constant.BootswatchFragment),
			)
		}
	},
}
