package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogShowCmd, catalogSchemaCmd)

	catalogShowCmd.Flags().BoolP("json", "j", false, "Format the record as a JSON object")
	catalogShowCmd.Flags().BoolP("open", "o", false, "Open the resolved source with the system handler")
	catalogShowCmd.SetOut(os.Stdout)
}

// catalogCmd groups commands that inspect title resolution without playing anything.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect how content ids resolve",
}

var catalogShowCmd = &cobra.Command{
	Use:     "show [content-id]",
	Short:   "Resolve a content id and print the normalized record",
	Args:    cobra.ExactArgs(1),
	Example: "  marquee catalog show sample-1 --json",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), catalog.Timeout())
		defer cancel()

		record, err := catalog.New().Resolve(ctx, args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("open")) {
			if record.Source() == "" {
				handleErr(fmt.Errorf("%s has no playable source", record.ID))
			}
			handleErr(open.Start(record.Source()))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(record))
			return
		}

		label := style.Fg(color.Purple)
		row := func(name, value string) {
			if value != "" {
				cmd.Printf("%s %s\n", label(fmt.Sprintf("%-10s", name)), value)
			}
		}

		cmd.Println(style.Title(lo.Ternary(record.Title == "", "Untitled", record.Title)))
		cmd.Println()
		row("Quality", record.Quality)
		row("Year", record.Year)
		row("Genre", record.Genre)
		row("Runtime", record.Runtime)
		row("Rating", record.Rating)
		row("Source", record.Source())
		for _, link := range record.Links {
			row("Link", fmt.Sprintf("%s %s", style.Pill(lo.Ternary(link.Label == "", "HD", link.Label)), link.URL))
		}
	},
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of a normalized record",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "catalog." + t.Name()
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&catalog.Record{})))
	},
}
