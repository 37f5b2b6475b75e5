// Command dirp is an interactive terminal directory profiler: point it at
// a path and it scans the subtree concurrently, streaming a collapsible
// size-ranked tree as measurements arrive, with keys to mark files or
// subtrees for deletion and send them to the OS trash.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/davidhvernon/dirp/internal/actor"
	"github.com/davidhvernon/dirp/internal/pathutil"
	"github.com/davidhvernon/dirp/internal/scan"
	"github.com/davidhvernon/dirp/internal/trash"
	"github.com/davidhvernon/dirp/internal/tui"
	"github.com/davidhvernon/dirp/internal/view"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "dirp <path>",
	Short:   "A directory profiler",
	Long:    `dirp recursively scans a directory, streams a size-ranked tree as it goes, and lets you mark files or subtrees for removal to the trash.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func run(cmd *cobra.Command, args []string) error {
	root, err := pathutil.Normalize(args[0])
	if err != nil {
		return fmt.Errorf("dirp: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publish := make(chan *view.Tree, 1)

	a := actor.New(root, trash.NewOSMover(), publish, actor.DefaultTickInterval)
	pool := scan.NewPool(ctx, scan.DefaultPoolSize, a.ScanResults())
	a.SetPool(pool)

	actorErrCh := make(chan error, 1)
	go func() {
		actorErrCh <- a.Run(ctx)
	}()

	model := tui.New(publish, a.Commands())
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, runErr := program.Run()
	cancel()

	actorErr := <-actorErrCh

	if runErr != nil {
		return fmt.Errorf("dirp: %w", runErr)
	}
	if actorErr != nil && !errors.Is(actorErr, context.Canceled) {
		// Trash failures surface only after the UI has torn down, per
		// the error-handling design: the file is left in place, nothing
		// else in the model is affected.
		return fmt.Errorf("dirp: %w", actorErr)
	}
	return nil
}
