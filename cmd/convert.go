package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/provlabs/funding-trading-bridge/config"
	"github.com/provlabs/funding-trading-bridge/conversion"
	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/spf13/cobra"
)

var convertCfg = &config.ConvertConfig{}

func init() {
	config.SetupLogFlags(&convertCfg.Log, convertCmd)
	config.SetupConvertSpecificFlags(convertCfg, convertCmd)

	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Previews a precision conversion without touching the chain.",
	Long: `Converts an integer amount from a source denom precision to a target denom
	precision, printing the converted amount and any unconvertible remainder. This is
	the same arithmetic the service applies to fund and withdraw requests.`,
	PreRunE: setupConvert,
	RunE:    runConvert,
}

func setupConvert(cmd *cobra.Command, args []string) error {
	bindFlags(cmd, viperConf)

	err := convertCfg.Validate()
	if err != nil {
		return err
	}

	setupLogger(convertCfg.Log.Level, convertCfg.Log.Path, convertCfg.Log.Pretty)

	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, ok := math.NewIntFromString(convertCfg.Base.Amount)
	if !ok {
		return fmt.Errorf("amount [%s] is not a valid integer", convertCfg.Base.Amount)
	}

	source := types.NewDenom(convertCfg.Base.FromDenom, convertCfg.Base.FromPrecision)
	target := types.NewDenom(convertCfg.Base.ToDenom, convertCfg.Base.ToPrecision)

	conv, err := conversion.Convert(amount, source, target)
	if err != nil {
		return err
	}

	fmt.Printf("%s%s (%s) converts to %s%s (%s)\n",
		amount, source.Name, source.DisplayAmount(amount),
		conv.TargetAmount, target.Name, target.DisplayAmount(conv.TargetAmount))
	if !conv.Remainder.IsZero() {
		fmt.Printf("remainder of %s%s cannot be represented in %s\n",
			conv.Remainder, source.Name, target.Name)
	}

	return nil
}
