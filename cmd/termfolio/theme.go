package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avitaltamir/termfolio/internal/config"
	"github.com/avitaltamir/termfolio/internal/state"
	"github.com/avitaltamir/termfolio/internal/theme"
)

// openStore returns an initialized store over the saved preferences.
// Every change is echoed to the command's output.
func openStore(cmd *cobra.Command, s config.Settings) (*theme.Store, *state.FileStorage, error) {
	storage, err := state.NewFileStorage(s.StateDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening state: %w", err)
	}

	store := theme.NewStore(storage, nil)
	store.Initialize()
	store.Subscribe(func(isDark bool) {
		fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", theme.Name(isDark))
	})
	return store, storage, nil
}

// checkSaved warns when the store's best-effort write did not stick, so the
// new theme only lasted for this command.
func checkSaved(cmd *cobra.Command, store *theme.Store, storage *state.FileStorage) {
	want := theme.Name(store.IsDark())
	got, ok, err := storage.Get(theme.StorageKey)
	if err == nil && ok && got == want {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: theme %q could not be saved to %s\n", want, storage.Path())
}

func showTheme(cmd *cobra.Command, s config.Settings) error {
	store, _, err := openStore(cmd, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", theme.Name(store.IsDark()))
	return nil
}

func toggleTheme(cmd *cobra.Command, s config.Settings) error {
	store, storage, err := openStore(cmd, s)
	if err != nil {
		return err
	}
	store.Toggle()
	checkSaved(cmd, store, storage)
	return nil
}

func setTheme(cmd *cobra.Command, s config.Settings, name string) error {
	want, err := theme.ParseName(name)
	if err != nil {
		return err
	}

	store, storage, err := openStore(cmd, s)
	if err != nil {
		return err
	}
	if store.IsDark() == want {
		fmt.Fprintf(cmd.OutOrStdout(), "theme: %s (unchanged)\n", name)
		return nil
	}
	store.Toggle()
	checkSaved(cmd, store, storage)
	return nil
}
