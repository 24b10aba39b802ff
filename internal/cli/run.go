package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/remind/docs"
	"github.com/aidanlsb/remind/internal/config"
	"github.com/aidanlsb/remind/internal/interp"
	"github.com/aidanlsb/remind/internal/notify"
	"github.com/aidanlsb/remind/internal/reminder"
	"github.com/aidanlsb/remind/internal/store"
	"github.com/aidanlsb/remind/internal/token"
	"github.com/aidanlsb/remind/internal/ui"
	"github.com/aidanlsb/remind/internal/watch"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadGlobalConfig()
	if err != nil {
		return err
	}
	ui.ConfigureAccent(cfg.UI.Accent)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runWatch(st, cfg)
	}

	if err := st.Load(); err != nil {
		return err
	}
	now := time.Now()
	command, err := interp.Interpret(token.Tokenize(args, now), now)
	if err != nil {
		return err
	}
	return dispatch(st, command, now)
}

// runWatch blocks until interrupted, delivering notifications as reminders
// come due.
func runWatch(st *store.Store, cfg *config.Config) error {
	fmt.Println("reminders at: " + ui.Accent.Render(st.Path()))
	fmt.Println(ui.Hint("press ctrl-c to stop"))

	loop, err := watch.New(watch.Config{
		Store:        st,
		Notifier:     &notify.Desktop{AppName: "remind"},
		PollInterval: cfg.PollInterval(),
		Debug:        debugFlag,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func dispatch(st *store.Store, c interp.Command, now time.Time) error {
	switch c.Kind {
	case interp.CmdList:
		return runList(st, now)
	case interp.CmdHelp:
		return runHelp()
	case interp.CmdUndo:
		return runUndo(st)
	case interp.CmdClear:
		return runClear(st, now)
	case interp.CmdRemove:
		return runRemove(st, c.Title, now)
	case interp.CmdSkip:
		return runSkip(st, c.Title, c.Count, now)
	case interp.CmdSkipNext:
		return runSkipNext(st, c.Count, now)
	default:
		return runAdd(st, c.Reminder, now)
	}
}

// runAdd advances the new reminder to its first future trigger, snapshots the
// pre-add list and appends. Weekday-only reminders land on the right day
// through this first advance.
func runAdd(st *store.Store, r reminder.Reminder, now time.Time) error {
	r.Update(now)
	if err := st.SaveHistory(now); err != nil {
		return err
	}
	if err := st.Append(&r); err != nil {
		return err
	}
	fmt.Println(ui.Successf("added: %s", r.Render(now)))
	return nil
}

func runList(st *store.Store, now time.Time) error {
	for i := 0; i < st.Len(); i++ {
		fmt.Println(st.At(i).Render(now))
	}
	return nil
}

func runHelp() error {
	raw, err := docs.FS.ReadFile("help.md")
	if err != nil {
		return fmt.Errorf("load help: %w", err)
	}
	rendered, err := ui.RenderMarkdown(string(raw), ui.TermWidth())
	if err != nil {
		// Plain markdown is still readable.
		fmt.Print(string(raw))
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func runUndo(st *store.Store) error {
	ok, err := st.Undo()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(ui.Info("nothing to undo"))
	}
	return nil
}

func runClear(st *store.Store, now time.Time) error {
	if err := st.SaveHistory(now); err != nil {
		return err
	}
	cleared, err := st.Clear()
	if err != nil {
		return err
	}
	if len(cleared) == 0 {
		return nil
	}
	fmt.Println("cleared:")
	for i := range cleared {
		fmt.Println(cleared[i].Render(now))
	}
	return nil
}

func runRemove(st *store.Store, title string, now time.Time) error {
	if err := st.SaveHistory(now); err != nil {
		return err
	}
	removed, err := st.Remove(title)
	if err != nil {
		return err
	}
	if removed == nil {
		fmt.Println(ui.Errorf("no reminders with title %q found", title))
		return nil
	}
	fmt.Println(ui.Successf("removed: %s", removed.Render(now)))
	return nil
}

func runSkip(st *store.Store, title string, n uint, now time.Time) error {
	if err := st.SaveHistory(now); err != nil {
		return err
	}
	ok, err := st.Skip(title, n)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(ui.Errorf("no reminders with title %q found", title))
	}
	return nil
}

func runSkipNext(st *store.Store, n uint, now time.Time) error {
	if err := st.SaveHistory(now); err != nil {
		return err
	}
	ok, err := st.SkipNext(n)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(ui.Info("no next reminder"))
	}
	return nil
}
