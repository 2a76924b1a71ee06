package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casework/casegraph/nlg"
	"github.com/casework/casegraph/sym"
)

var classesPrefix string

// ClassesCmd represents the classes command
var ClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: sym.Classes + " List the classes the catalog knows how to construct",
	Long: sym.Classes + ` classes — List every class name registered in the construction
catalog, sorted alphabetically.

Examples:
  casegraph classes                      # Full catalog
  casegraph classes --prefix core_       # Primary entity classes
  casegraph classes --prefix propbundle_ # Property bundle classes`,
	Run: runClassesCommand,
}

func init() {
	ClassesCmd.Flags().StringVarP(&classesPrefix, "prefix", "p", "", "Only list classes with this prefix")
}

func runClassesCommand(cmd *cobra.Command, args []string) {
	for _, name := range nlg.Classes() {
		if classesPrefix != "" && !strings.HasPrefix(name, classesPrefix) {
			continue
		}
		fmt.Println(name)
	}
}
