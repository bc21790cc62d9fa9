package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avitaltamir/termfolio/internal/app"
	"github.com/avitaltamir/termfolio/internal/config"
	"github.com/avitaltamir/termfolio/internal/contact"
	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/state"
	"github.com/avitaltamir/termfolio/internal/theme"
)

var version = "dev"

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "termfolio",
		Short:         "A developer portfolio in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(v, cfgFile); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, config.Load(v))
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.termfolio.yaml)")
	rootCmd.PersistentFlags().String("state-dir", "", "Directory for saved preferences (default ~/.config/termfolio)")
	rootCmd.PersistentFlags().String("content", "", "Portfolio YAML to show instead of the built-in one")
	_ = v.BindPFlag(config.KeyStateDir, rootCmd.PersistentFlags().Lookup("state-dir"))
	_ = v.BindPFlag(config.KeyContentPath, rootCmd.PersistentFlags().Lookup("content"))

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTheme(cmd, config.Load(v))
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleTheme(cmd, config.Load(v))
		},
	}

	setCmd := &cobra.Command{
		Use:       "set dark|light",
		Short:     "Save a specific theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{theme.ValueDark, theme.ValueLight},
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTheme(cmd, config.Load(v), args[0])
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "termfolio", version)
		},
	}

	themeCmd.AddCommand(toggleCmd, setCmd)
	rootCmd.AddCommand(themeCmd, versionCmd)
	return rootCmd
}

// run starts the TUI, or prints the page once when stdout is not a terminal.
func run(cmd *cobra.Command, s config.Settings) error {
	storage, err := state.NewFileStorage(s.StateDir)
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	portfolio := content.LoadOrDefault(s.ContentPath)

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		store := theme.NewStore(storage, nil)
		store.Initialize()
		_, err := io.WriteString(out, app.RenderStatic(portfolio, store.IsDark(), app.DefaultStaticWidth))
		return err
	}

	// Anything logged to the terminal would tear the alt screen
	if s.DebugLog != "" {
		f, err := tea.LogToFile(s.DebugLog, "termfolio")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := app.New(app.Options{
		Context:      ctx,
		Storage:      storage,
		Portfolio:    portfolio,
		Sender:       contact.NewSender(s.Contact),
		SendTimeout:  s.Contact.Timeout,
		NerdFonts:    s.NerdFonts,
		ContentPath:  s.ContentPath,
		WatchContent: s.WatchContent,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	// Set the app version for display in the UI
	app.Version = version

	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
