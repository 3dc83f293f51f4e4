package cmd

import (
	"fmt"

	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/spf13/cobra"
)

// Version is stamped in at build time via ldflags.
var Version = "development"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the binary version and the contract logic it carries.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("funding-trading-bridge %s (contract %s %s)\n", Version, types.ContractType, types.ContractVersion)
	},
}
