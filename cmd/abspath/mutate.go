package main

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/abspath"
	"github.com/spf13/cobra"
)

func newMvCmd(handler *abspath.Handler) *cobra.Command {
	var force bool
	var into bool

	cmd := &cobra.Command{
		Use:   "mv SRC DST",
		Short: "Move a filesystem entry",
		Long:  "Move a filesystem entry to an exact destination, or with --into below a destination directory keeping its basename.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := abspath.New(args[0])
			if err != nil {
				return err
			}
			dst, err := abspath.New(args[1])
			if err != nil {
				return err
			}

			var moved abspath.Path
			if into {
				moved, err = handler.MvInto(src, dst, force)
			} else {
				moved, err = handler.Mv(src, dst, force)
			}
			if err != nil {
				return err
			}

			slog.Info("Moved.", "src", src, "dst", moved)
			fmt.Fprintln(cmd.OutOrStdout(), moved)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", forceDefault(), "overwrite an existing destination")
	cmd.Flags().BoolVar(&into, "into", false, "treat DST as a directory to move into")

	return cmd
}

func newRmCmd(handler *abspath.Handler) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm PATH",
		Short: "Remove a filesystem entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			if recursive {
				return handler.RmTree(p)
			}

			return handler.Rm(p)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents")

	return cmd
}

func newMkpathCmd(handler *abspath.Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "mkpath PATH",
		Short: "Create a directory and all missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			return handler.Mkpath(p)
		},
	}
}

func newLinkCmd(handler *abspath.Handler) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "link DIR FROM TO",
		Short: "Create a relative symlink at TO pointing at FROM",
		Long:  "Create a symlink at TO pointing at FROM, with both endpoints expressed relative to DIR so the link survives relocation of the containing tree.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := abspath.New(args[0])
			if err != nil {
				return err
			}
			from, err := abspath.New(args[1])
			if err != nil {
				return err
			}
			to, err := abspath.New(args[2])
			if err != nil {
				return err
			}

			if err := handler.Symlink(dir, from, to, force); err != nil {
				return err
			}

			slog.Info("Linked.", "from", from, "to", to, "dir", dir)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", forceDefault(), "replace an existing entry at TO")

	return cmd
}

func newWriteCmd(handler *abspath.Handler) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "write PATH TEXT",
		Short: "Write text content to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := abspath.New(args[0])
			if err != nil {
				return err
			}

			return handler.Write(p, args[1], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", forceDefault(), "overwrite an existing destination")

	return cmd
}
