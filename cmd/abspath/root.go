package main

import (
	"os"
	"strconv"

	"github.com/desertwitch/abspath"
	"github.com/desertwitch/abspath/syscalls"
	"github.com/spf13/cobra"
)

// envForce lets an environment file flip the default of --force.
const envForce = "ABSPATH_FORCE"

func newRootCmd() *cobra.Command {
	handler := abspath.NewHandler(&syscalls.OS{}, &syscalls.Unix{})

	root := &cobra.Command{
		Use:          "abspath",
		Short:        "Inspect and manipulate absolute filesystem paths",
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(
		newInfoCmd(handler),
		newLsCmd(handler),
		newResolveCmd(handler),
		newHashCmd(handler),
		newMvCmd(handler),
		newRmCmd(handler),
		newMkpathCmd(handler),
		newLinkCmd(handler),
		newWriteCmd(handler),
	)

	return root
}

func forceDefault() bool {
	v, err := strconv.ParseBool(os.Getenv(envForce))
	if err != nil {
		return false
	}

	return v
}
