package main

import (
	"fmt"

	"github.com/NethermindEth/fixedseq/containers"
	"github.com/NethermindEth/fixedseq/utils"
	"github.com/NethermindEth/fixedseq/validator"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF   = "config"
	logLevelF = "log-level"
	colourF   = "colour"
	lengthF   = "length"
	valuesF   = "values"
	atF       = "at"
	formatF   = "format"

	defaultConfig = ""
	defaultColour = true
	defaultLength = 0
	defaultFormat = "table"

	configFlagUsage   = "The yaml configuration file."
	logLevelFlagUsage = "Options: debug, info, warn, error, fatal."
	colourUsage       = "Uses --colour=false command to disable colourized outputs (ANSI Escape Codes)."
	lengthUsage       = "Length of the zero-valued sequence to build when --values is not set. " +
		"Negative lengths are rejected."
	valuesUsage = "Comma-separated elements of the sequence, e.g. --values 10,20,30."
	atUsage     = "Comma-separated indices to resolve through the bounds-checked accessor. " +
		"Any index outside [0, length) fails the command."
	formatUsage = "Output format. Options: table, json, yaml, cbor, dump."
)

// Config is the decoded, validated form of the command's flags and config file.
type Config struct {
	LogLevel utils.LogLevel `mapstructure:"log-level" validate:"oneof=debug info warn error fatal"`
	Colour   bool           `mapstructure:"colour"`
	Length   int            `mapstructure:"length"`
	Values   []int          `mapstructure:"values"`
	At       []int          `mapstructure:"at"`
	Format   string         `mapstructure:"format" validate:"oneof=table json yaml cbor dump"`
}

type NewLoggerFn func(level *utils.LogLevel, colour bool) (utils.SimpleLogger, error)

func newZapLogger(level *utils.LogLevel, colour bool) (utils.SimpleLogger, error) {
	return utils.NewZapLogger(level, colour)
}

func NewCmd(newLoggerFn NewLoggerFn) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "fixedseq [flags]",
		Short:   "Builds a fixed-length sequence and inspects it.",
		Version: Version,
		Args:    cobra.NoArgs,
	}

	defaultLogLevel := utils.WARN
	cmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	cmd.Flags().Var(&defaultLogLevel, logLevelF, logLevelFlagUsage)
	cmd.Flags().Bool(colourF, defaultColour, colourUsage)
	cmd.Flags().Int(lengthF, defaultLength, lengthUsage)
	cmd.Flags().IntSlice(valuesF, nil, valuesUsage)
	cmd.Flags().IntSlice(atF, nil, atUsage)
	cmd.Flags().String(formatF, defaultFormat, formatUsage)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(Config)
		decodeHook := mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
		if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHook)); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
		if err := validator.Validator().Struct(cfg); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log, err := newLoggerFn(&cfg.LogLevel, cfg.Colour)
		if err != nil {
			return err
		}

		return inspect(cmd, cfg, log)
	}

	return cmd
}

func buildSequence(cfg *Config) (*containers.FixedSequence[int], error) {
	if len(cfg.Values) > 0 {
		return containers.FromSlice(cfg.Values...), nil
	}
	return containers.New[int](cfg.Length)
}

func inspect(cmd *cobra.Command, cfg *Config, log utils.SimpleLogger) error {
	seq, err := buildSequence(cfg)
	if err != nil {
		log.Errorw("Failed to build sequence", "length", cfg.Length, "err", err)
		return err
	}
	log.Debugw("Built sequence", "length", seq.Len())

	report := Report{Length: seq.Len()}
	for it := seq.Begin(); !it.Equal(seq.End()); it.Inc() {
		report.Elements = append(report.Elements, it.Value())
	}
	if !seq.Empty() {
		first, last := *seq.Front(), *seq.Back()
		report.First, report.Last = &first, &last
	}

	for _, i := range cfg.At {
		value, err := seq.Load(i)
		if err != nil {
			log.Errorw("Lookup failed", "index", i, "length", seq.Len())
			return fmt.Errorf("lookup: %w", err)
		}
		report.Lookups = append(report.Lookups, Lookup{Index: i, Value: value})
	}

	log.Infow("Rendering sequence", "format", cfg.Format, "lookups", len(report.Lookups))
	return render(cmd.OutOrStdout(), cfg.Format, seq, &report)
}
