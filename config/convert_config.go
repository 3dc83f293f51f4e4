package config

import (
	"errors"

	"github.com/provlabs/funding-trading-bridge/util"
	"github.com/spf13/cobra"
)

// ConvertConfig backs the offline conversion preview command.
type ConvertConfig struct {
	Log  log
	Base convertBase
}

type convertBase struct {
	Amount        string `mapstructure:"amount"`
	FromDenom     string `mapstructure:"from-denom"`
	FromPrecision uint64 `mapstructure:"from-precision"`
	ToDenom       string `mapstructure:"to-denom"`
	ToPrecision   uint64 `mapstructure:"to-precision"`
}

func SetupConvertSpecificFlags(conf *ConvertConfig, cmd *cobra.Command) {
	cmd.Flags().StringVar(&conf.Base.Amount, "amount", "", "integer amount to convert, denominated in the source denom's smallest unit")
	cmd.Flags().StringVar(&conf.Base.FromDenom, "from-denom", "deposit", "source denom name")
	cmd.Flags().Uint64Var(&conf.Base.FromPrecision, "from-precision", 0, "source denom decimal precision")
	cmd.Flags().StringVar(&conf.Base.ToDenom, "to-denom", "trading", "target denom name")
	cmd.Flags().Uint64Var(&conf.Base.ToPrecision, "to-precision", 0, "target denom decimal precision")
}

func (conf *ConvertConfig) Validate() error {
	if util.StrNotSet(conf.Base.Amount) {
		return errors.New("amount must be set")
	}
	if util.StrNotSet(conf.Base.FromDenom) {
		return errors.New("from-denom must be set")
	}
	if util.StrNotSet(conf.Base.ToDenom) {
		return errors.New("to-denom must be set")
	}
	return nil
}
