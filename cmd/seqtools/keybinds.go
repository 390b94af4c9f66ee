package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqtools/seqtools/internal/config"
	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/keybinds"
)

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Check or export the viewer key bindings",
	Long: `Validate ~/.seqtools/keybinds.json and list the keys the viewer will use,
or write the default bindings there with --export as a starting point for
customization.

The file maps action names to comma-separated keys per context:

  {
    "version": "1.0",
    // vim-style scrolling
    "viewer": { "scroll_down": "down,j", "scroll_up": "up,k" }
  }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if keybindsExport {
			return exportKeybinds(cmd.OutOrStdout(), config.KeybindsFile, keybindsForce)
		}
		return checkKeybinds(cmd.OutOrStdout(), config.KeybindsFile)
	},
}

var (
	keybindsExport bool
	keybindsForce  bool
)

func init() {
	keybindsCmd.Flags().BoolVar(&keybindsExport, "export", false, "Write the default bindings to keybinds.json")
	keybindsCmd.Flags().BoolVar(&keybindsForce, "force", false, "Overwrite an existing keybinds.json")

	rootCmd.AddCommand(keybindsCmd)
}

// checkKeybinds validates the override file, prints the findings and
// then the bindings the viewer will use.
func checkKeybinds(out io.Writer, path string) error {
	const op = errors.Op("cli.keybinds")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "%s not found, using default key bindings\n", path)
		printBindings(out, keybinds.NewDefaultRegistry())
		return nil
	}

	cfg, err := keybinds.LoadConfig(path)
	if err != nil {
		return errors.E(op, errors.KindConfig, path, err)
	}

	result := keybinds.NewValidator().ValidateConfig(cfg)
	fmt.Fprintln(out, result.String())
	if result.HasErrors() {
		return errors.E(op, errors.KindConfig, "invalid "+path)
	}

	registry, err := keybinds.LoadOrDefault(path)
	if err != nil {
		return err
	}
	printBindings(out, registry)
	return nil
}

// printBindings lists every key the viewer reacts to
func printBindings(out io.Writer, registry *keybinds.Registry) {
	fmt.Fprintf(out, "\n%-10s %-20s %s\n", "KEY", "ACTION", "CONTEXT")
	for _, b := range registry.ListBindings(keybinds.ContextViewer) {
		fmt.Fprintf(out, "%-10s %-20s %s\n", b.Key, b.Action, b.Context)
	}
}

// exportKeybinds writes the default bindings to path
func exportKeybinds(out io.Writer, path string, force bool) error {
	const op = errors.Op("cli.keybinds")

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Invalid(op, path+" already exists (use --force to overwrite)")
		}
	}
	if err := keybinds.SaveConfig(keybinds.ExportDefaults(), path); err != nil {
		return errors.E(op, errors.KindIO, path, err)
	}

	fmt.Fprintf(out, "wrote default key bindings to %s\n", path)
	return nil
}
