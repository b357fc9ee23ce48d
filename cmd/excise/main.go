// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mdhender/excise"
	"github.com/spf13/cobra"
)

func main() {
	fileName := ""
	limit := excise.Unbounded
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.Flags().StringVarP(&fileName, "file", "f", fileName, "input file to filter")
		cmd.Flags().Int64VarP(&limit, "limit", "l", limit, "how many of each literal pattern character to remove")
		return cmd.MarkFlagRequired("file")
	}
	var cmdRoot = &cobra.Command{
		Use:   "excise -f <file> [-l <limit>] <pattern>",
		Short: "remove characters from a file",
		Long: `Remove characters from a file's contents and write the result to stdout.

The pattern mixes literal characters with bracketed class tokens. Every byte
matching a class token present in the pattern is removed; each remaining
literal pattern character removes up to --limit occurrences of itself.

Class tokens:
 [:alnum:], [:alpha:], [:blank:], [:cntrl:], [:digit:]
 [:graph:], [:lower:], [:print:], [:punct:], [:space:]
 [:htab:], [:vtab:], [:newline:], [:upper:], [:xdigit:]`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require the pattern argument
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			logger := slog.New(slog.DiscardHandler)
			if debug {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			// reject a bad limit before reading the file so a
			// configuration error never produces partial output.
			resolver, err := excise.NewResolver(cmd.Context(), args[0], limit, logger)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(fileName)
			if err != nil {
				return &excise.ErrReadFile{Path: fileName, Err: err}
			}

			if _, err := os.Stdout.Write(resolver.Apply(data)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(excise.Version().String())
				return nil
			}
			fmt.Println(excise.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return cmd
}
