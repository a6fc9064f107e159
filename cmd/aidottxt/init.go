// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aidottxt/internal/answers"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample aidottxt.yaml answers file",
	Long: `Write an aidottxt.yaml file holding the default answers. Edit it and run
aidottxt --no-input to generate documents without prompts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := "aidottxt.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if err := writeSample(path, force, time.Now()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeSample saves the default answers to path. An existing file is kept
// unless force is set.
func writeSample(path string, force bool, now time.Time) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}
	return answers.Save(path, answers.Defaults(now))
}
