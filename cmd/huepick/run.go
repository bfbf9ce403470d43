package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huepick/internal/clip"
	"github.com/alexisbeaulieu97/huepick/internal/tui"
)

var errCancelled = errors.New("cancelled")

// Swapped in tests.
var (
	runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		return tea.NewProgram(m, opts...).Run()
	}
	stderrIsTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
	copyToClipboard  = clip.WriteAll
)

// runWidget runs widget full screen on stderr so stdout carries only the
// picked color.
func runWidget(cmd *cobra.Command, app *appContext, widget tui.Widget, title string) error {
	if !stderrIsTerminal() {
		return errors.New("huepick needs an interactive terminal on stderr")
	}

	model := tui.NewModel(widget, tui.Options{
		Title:  title,
		Logger: app.log,
		Copy:   copyToClipboard,
	})

	app.log.Info("starting picker")
	final, err := runProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithInputTTY(),
	)
	if err != nil {
		app.log.Error(err, "picker failed")
		return fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	c, accepted := result.Result()
	if !accepted {
		app.log.Info("picker cancelled")
		return errCancelled
	}

	hex := c.Hex()
	app.log.With("hex", hex).Info("color picked")
	fmt.Fprintln(cmd.OutOrStdout(), hex)

	if app.cfg.CopyOnExit {
		res, err := copyToClipboard(hex)
		if err != nil {
			app.log.Error(err, "copy failed")
			return err
		}
		app.log.With("method", string(res.Method)).Info("copied color")
		if res.FilePath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "clipboard unavailable, color saved to %s\n", res.FilePath)
		}
	}
	return nil
}
