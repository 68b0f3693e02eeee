package cmd

import (
	"fmt"
	"os"

	"github.com/aledsdavies/peacockgen/codegen"
	"github.com/aledsdavies/peacockgen/grammar"
	"github.com/spf13/cobra"
)

var (
	generatePackage string
	generateOutput  string
)

var generateCmd = &cobra.Command{
	Use:   "generate [grammar.json]",
	Short: "Compile a grammar document into a Go derivation engine",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generatePackage, "package", "", "package name for the generated file (default: engine)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output path (default: stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	pkg := cfg.PackageName
	if generatePackage != "" {
		pkg = generatePackage
	}
	out := cfg.Output
	if generateOutput != "" {
		out = generateOutput
	}

	grammarPath, err := resolveGrammarPath(args, cfg, configPath)
	if err != nil {
		return err
	}
	g, err := loadGrammarFile(grammarPath)
	if err != nil {
		return err
	}

	src, err := codegen.Generate(g, codegen.Options{PackageName: pkg})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if out == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

func loadGrammarFile(path string) (*grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", path, err)
	}
	g, err := grammar.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading grammar %s: %w", path, err)
	}
	return g, nil
}
