// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Command pathglob lists files or directories matched by glob patterns.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathglob"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// listFlags holds shared flags of the files and dirs subcommands.
type listFlags struct {
	excludes     []string
	patternFiles []string
	extensions   []string
	relative     bool
	sorted       bool
	endWeighted  bool
	depth        int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand creates the root cobra command.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathglob",
		Short: "Glob-driven file and directory listing",
		Long: `Pathglob walks a directory tree and lists the files or directories
matched by glob patterns, pruning subtrees that cannot contain a match.

Patterns may be absolute or relative to the starting directory and may be
negated with a leading "!". Without patterns, everything outside the default
exclude set is listed.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(newListCommand("files", "List matching files", false))
	cmd.AddCommand(newListCommand("dirs", "List matching directories", true))

	return cmd
}

// newListCommand creates one listing subcommand.
func newListCommand(name string, short string, wantDirs bool) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   name + " DIR [pattern...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, flags, wantDirs)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.excludes, "exclude", "e", nil, "exclude glob pattern (repeatable)")
	cmd.Flags().StringArrayVarP(&flags.patternFiles, "patterns-file", "f", nil, "file with glob patterns, one per line (repeatable)")
	cmd.Flags().StringArrayVarP(&flags.extensions, "ext", "x", nil, "include files by extension (repeatable)")
	cmd.Flags().BoolVarP(&flags.relative, "relative", "r", false, "match patterns against paths relative to DIR")
	cmd.Flags().IntVarP(&flags.depth, "depth", "d", 0, "walk depth bound (0 derives it from patterns)")
	cmd.Flags().BoolVarP(&flags.sorted, "sort", "s", false, "sort results by include pattern priority")
	cmd.Flags().BoolVar(&flags.endWeighted, "end-weighted", false, "rank by last matching pattern instead of first")

	return cmd
}

// runList executes one listing subcommand.
func runList(cmd *cobra.Command, args []string, flags *listFlags, wantDirs bool) error {
	dir := args[0]

	filePatterns, err := pathglob.LoadPatternsFiles(flags.patternFiles...)
	if err != nil {
		return err
	}

	patterns := pathglob.MergePatterns(
		args[1:],
		filePatterns,
		pathglob.ExtensionPatterns(flags.extensions),
	)

	// Distinguish "no patterns given" from an explicit empty list: nil means
	// match everything.
	var includes []string
	if len(patterns) > 0 {
		includes = patterns
	}

	opts := &pathglob.ListOptions{
		RelativeGlob: flags.relative,
		Depth:        flags.depth,
	}
	if cmd.Flags().Changed("exclude") {
		opts.ExcludeGlobs = flags.excludes
	}

	var results []pathglob.Path
	if wantDirs {
		results, err = pathglob.ListDirs(dir, includes, opts)
	} else {
		results, err = pathglob.ListFiles(dir, includes, opts)
	}
	if err != nil {
		return err
	}

	if flags.sorted {
		if err := pathglob.SortByGlobs(results, patterns, flags.endWeighted); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, result := range results {
		fmt.Fprintln(out, result.String())
	}

	return nil
}
