package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/casework/casegraph/config"
	"github.com/casework/casegraph/errors"
	"github.com/casework/casegraph/graph"
	"github.com/casework/casegraph/logger"
	"github.com/casework/casegraph/parser"
	"github.com/casework/casegraph/sym"
)

var buildOutput string

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build FILE",
	Short: sym.Build + " Construct and serialize a graph from a config file",
	Long: sym.Build + ` build — Construct a CASE graph from a line-oriented construction config.

Every object declared in FILE is validated against the class catalog and
added to the graph; on success the graph is serialized as JSON-LD. Any
construction error aborts the run before an output file is written.

The output path defaults to FILE with its .config suffix replaced by the
configured output suffix, placed in the configured output directory (or
next to the input when no directory is set).

Examples:
  casegraph build evidence.config
  casegraph build -o /tmp/graph.json evidence.config`,
	Args: cobra.ExactArgs(1),
	RunE: runBuildCommand,
}

func init() {
	BuildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Write the serialized graph to this path")
}

func runBuildCommand(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	doc := graph.NewDocument(
		graph.WithNamespace(cfg.Namespace),
		graph.WithIndent(cfg.Output.Indent),
	)

	logger.Logger.Infow("building graph", "input", input)

	if err := parser.New(doc).ParseFile(input); err != nil {
		return errors.Wrapf(err, "failed to build graph from %s", input)
	}

	outputPath := buildOutput
	if outputPath == "" {
		outputPath = deriveOutputPath(input, cfg)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create output file %s", outputPath)
	}
	defer out.Close()

	if err := doc.Serialize(out); err != nil {
		return errors.Wrapf(err, "failed to write %s", outputPath)
	}

	logger.Logger.Infow("graph serialized", "output", outputPath, "nodes", doc.Len())

	printBuildSummary(doc, outputPath)
	return nil
}

// deriveOutputPath maps the input config path to its serialized twin:
// the .config suffix is stripped, the configured suffix appended, and the
// file placed in the configured directory or next to the input.
func deriveOutputPath(input string, cfg *config.Config) string {
	name := strings.TrimSuffix(filepath.Base(input), ".config") + cfg.Output.Suffix
	dir := cfg.Output.Directory
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func printBuildSummary(doc *graph.Document, outputPath string) {
	pterm.Success.Printf("%s Graph built: %d nodes\n", sym.Graph, doc.Len())

	counts := doc.CategoryCounts()
	for _, cat := range []graph.Category{
		graph.CategoryCore,
		graph.CategoryContext,
		graph.CategoryPropertyBundle,
		graph.CategoryDuck,
		graph.CategorySub,
	} {
		if counts[cat] == 0 {
			continue
		}
		pterm.Printf("  %-16s %d\n", cat.String(), counts[cat])
	}

	pterm.Info.Printf("Output: %s\n", outputPath)
}

// resolveConfig honors the persistent --config flag; without it the
// normal cascade applies.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
