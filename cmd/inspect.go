package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/bulmaswatch/swatchport/color"
	"github.com/bulmaswatch/swatchport/icon"
	"github.com/bulmaswatch/swatchport/manifest"
	"github.com/bulmaswatch/swatchport/mapping"
	"github.com/bulmaswatch/swatchport/palette"
	"github.com/bulmaswatch/swatchport/render"
	"github.com/bulmaswatch/swatchport/report"
	"github.com/bulmaswatch/swatchport/scss"
	"github.com/bulmaswatch/swatchport/style"
	"github.com/bulmaswatch/swatchport/theme"
	"github.com/bulmaswatch/swatchport/util"
	"github.com/bulmaswatch/swatchport/where"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolP("json", "j", false, "Print the transformed model as JSON")
	inspectCmd.Flags().BoolP("files", "f", false, "Print the generated files instead of writing them")
	inspectCmd.MarkFlagsMutuallyExclusive("json", "files")
	inspectCmd.SetOut(os.Stdout)
}

// inspectCmd transforms one legacy theme without writing anything.
var inspectCmd = &cobra.Command{
	Use:               "inspect <theme>",
	Short:             "Show how a legacy theme is transformed",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionThemes,
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		decls, warnings := scss.ExtractTheme(filepath.Join(where.LegacyThemes(), name))
		for _, warning := range warnings {
			cmd.PrintErrf("%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), warning)
		}

		model, err := theme.Transform(name, decls)
		handleErr(err)

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(model))
		case lo.Must(cmd.Flags().GetBool("files")):
			files, err := render.Render(model)
			handleErr(err)
			printFiles(cmd, files)
		default:
			printModel(cmd, decls, model)
		}
	},
}

func printFiles(cmd *cobra.Command, files manifest.Files) {
	for i, path := range files.Paths() {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(style.Title(path))
		cmd.Println(files[path])
	}
}

func printModel(cmd *cobra.Command, decls *scss.Declarations, model *theme.Model) {
	header := style.New().Bold(true).Foreground(color.HiPurple).Render
	written := render.Variables(model.InitialVars, mapping.InitialDefaults, mapping.InitialVariables)

	cmd.Printf("%s %s\n", icon.Get(icon.Theme), style.Bold(model.Name))
	cmd.Printf(
		"%s extracted, %s written, %s registered\n\n",
		util.Quantify(decls.Len(), "declaration", "declarations"),
		util.Quantify(len(written), "initial variable", "initial variables"),
		util.Quantify(model.CSSVars.Len(), "CSS variable", "CSS variables"),
	)

	cmd.Println(header("Palette"))
	width := util.Max(lo.Map(model.Colors.Keys(), func(k string, _ int) int { return len(k) })...)
	model.Colors.Each(func(key string, c palette.Color) {
		cmd.Printf(
			"  %-*s %s %s  %s %s\n",
			width, key,
			style.Swatch(c.Base), c.Base,
			style.Swatch(c.Invert), style.Faint(c.Invert),
		)
	})

	cmd.Println()
	cmd.Println(header("Initial variables"))
	for _, v := range written {
		cmd.Printf("  %s: %s\n", style.Fg(color.Purple)(v.Name), v.Value)
	}
}

func init() {
	inspectCmd.AddCommand(inspectSchemaCmd)
	inspectSchemaCmd.Flags().BoolP("report", "r", false, "Generate the JSON Schema of the run report")
	inspectSchemaCmd.Flags().BoolP("manifest", "m", false, "Generate the JSON Schema of the manifest")
	inspectSchemaCmd.MarkFlagsMutuallyExclusive("report", "manifest")
}

// inspectSchemaCmd prints JSON schemas of the documents swatchport emits.
var inspectSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema of inspect --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return fmt.Sprintf("%s.%s", filepath.Base(t.PkgPath()), t.Name())
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("report")):
			schema = reflector.Reflect(&report.Report{})
		case lo.Must(cmd.Flags().GetBool("manifest")):
			schema = reflector.Reflect(manifest.Files{})
		default:
			schema = reflector.Reflect(&theme.Model{})
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
