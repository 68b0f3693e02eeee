package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/aledsdavies/peacockgen/internal/preview"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchSeed uint64

var watchCmd = &cobra.Command{
	Use:   "watch [grammar.json]",
	Short: "Reload and validate a grammar whenever its file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Uint64Var(&watchSeed, "seed", 0, "seed for the preview sample printed after each reload (default: peacock.yaml's \"seed\")")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	path, err := resolveGrammarPath(args, cfg, configPath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = watchSeed
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directory, not the file itself: editors commonly
	// save by rename-over-original, which replaces the inode fsnotify was
	// watching and silently stops delivering events for it.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	reload(cmd, path, seed)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldReload(event, path) {
				continue
			}
			reload(cmd, path, seed)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

// shouldReload reports whether event is a write/create on path itself,
// filtering out events for unrelated files in the watched directory and
// no-op event kinds (chmod, rename-away).
func shouldReload(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func reload(cmd *cobra.Command, path string, seed uint64) {
	g, err := loadGrammarFile(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return
	}

	sample, err := preview.Sample(g, seed)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: loaded ok, but sampling failed: %v\n", path, err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, sample: %s\n", path, sample)
}
