package main

import (
	"fmt"
	"os"
	"path/filepath"

	"extrenamer/internal/config"
	"extrenamer/internal/errors"
	"extrenamer/internal/log"
	"extrenamer/internal/session"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd(executableDir)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command. resolveDir supplies the directory
// the run operates on.
func NewRootCmd(resolveDir func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extrenamer",
		Short: "Bulk add, change or strip file extensions",
		Long: `extrenamer renames the files next to its own executable by rewriting
their extensions. It asks for the extension to search for ("all" for every
file, "add" to append without removing anything) and the new extension
("none" to remove it), previews the renames and asks for confirmation.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			log.SetDebug(cfg.Settings.Debug)

			dir, err := resolveDir()
			if err != nil {
				return err
			}

			s := session.New(cfg, dir, cmd.InOrStdin(), cmd.OutOrStdout())
			summary, err := s.Run()
			if err != nil {
				if errors.IsAbort(err) {
					log.Debugf("run ended early: %v", err)
					return nil
				}
				return err
			}

			log.LogWithFields(
				log.F("matched", summary.Matched),
				log.F("renamed", summary.Renamed),
				log.F("errors", summary.Errors),
			).Debug("run complete")
			return nil
		},
	}

	return cmd
}

// executableDir returns the directory holding the running executable, so
// a copied binary always works on the folder it sits in.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.NewFileError("cannot locate executable", "", errors.ExecutableNotFound, err)
	}
	return filepath.Dir(filepath.Clean(exe)), nil
}
