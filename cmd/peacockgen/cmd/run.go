package cmd

import (
	"fmt"

	"github.com/aledsdavies/peacockgen/internal/preview"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

var (
	runCount int
	runSeed  uint64
	runEntry string
)

var runCmd = &cobra.Command{
	Use:   "run [grammar.json]",
	Short: "Print sample derivations of a grammar without compiling it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&runCount, "count", 5, "number of samples to print")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "seed for the first sample; subsequent samples derive from it (default: peacock.yaml's \"seed\")")
	runCmd.Flags().StringVar(&runEntry, "entry", "", "non-terminal to start from (default: peacock.yaml's \"entry\", or the grammar's entry)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	grammarPath, err := resolveGrammarPath(args, cfg, configPath)
	if err != nil {
		return err
	}
	g, err := loadGrammarFile(grammarPath)
	if err != nil {
		return err
	}

	entry := cfg.Entry
	if cmd.Flags().Changed("entry") {
		entry = runEntry
	}
	if entry != "" && entry != g.Entry {
		if _, ok := g.NonTerminals[entry]; !ok {
			return fmt.Errorf("unknown non-terminal %q%s", entry, didYouMean(entry, g.SortedNames()))
		}
		g.Entry = entry
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = runSeed
	}

	for i := 0; i < runCount; i++ {
		sample, err := preview.Sample(g, seed+uint64(i))
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), sample)
	}
	return nil
}

func didYouMean(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", ranks[0].Target)
}
