package main

import (
	"encoding/hex"
	"fmt"

	"github.com/desertwitch/abspath"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
)

func newInfoCmd(handler *abspath.Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH",
		Short: "Print classification and composition facts about a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			exists, err := handler.Exists(p)
			if err != nil {
				return err
			}
			isFile, err := handler.IsFile(p)
			if err != nil {
				return err
			}
			isDir, err := handler.IsDir(p)
			if err != nil {
				return err
			}
			isLink, err := handler.IsSymlink(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:      %s\n", p)
			fmt.Fprintf(out, "parent:    %s\n", p.Parent())
			fmt.Fprintf(out, "basename:  %s\n", p.Basename())
			fmt.Fprintf(out, "extname:   %s\n", p.Extname())
			fmt.Fprintf(out, "exists:    %t\n", exists)
			fmt.Fprintf(out, "file:      %t\n", isFile)
			fmt.Fprintf(out, "directory: %t\n", isDir)
			fmt.Fprintf(out, "symlink:   %t\n", isLink)

			if isFile {
				content, err := handler.Read(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "size:      %s\n", humanize.IBytes(uint64(len(content))))
			}

			return nil
		},
	}
}

func newLsCmd(handler *abspath.Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "ls PATH",
		Short: "List the entries of a directory as absolute paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			entries, err := handler.Ls(p)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry)
			}

			return nil
		},
	}
}

func newResolveCmd(handler *abspath.Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH",
		Short: "Resolve a symlink at the final path component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			resolved, err := handler.Readlink(p)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolved)

			return nil
		},
	}
}

func newHashCmd(handler *abspath.Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "hash PATH",
		Short: "Print the BLAKE3 checksum and size of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			content, err := handler.Read(p)
			if err != nil {
				return err
			}

			hasher := blake3.New()
			hasher.Write([]byte(content)) //nolint:errcheck

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n",
				hex.EncodeToString(hasher.Sum(nil)), p,
				humanize.IBytes(uint64(len(content))),
			)

			return nil
		},
	}
}
