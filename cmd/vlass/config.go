package main

// this file contains all the code that touches viper and the survey flags.
import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/caseyjlaw/vlass/pkg/survey"
)

// addSurveyFlags registers one flag per survey.Config field, defaulted
// from survey.DefaultConfig. Flag names match the config file keys.
func addSurveyFlags(fs *pflag.FlagSet) {
	d := survey.DefaultConfig()

	fs.Float64("fov", d.FOV, "S-band primary beam FWHM (arcmin)")
	fs.Int("decmin", d.DecMin, "min declination (deg)")
	fs.Int("decmax", d.DecMax, "max declination (deg, exclusive)")
	fs.Float64("overhead", d.Overhead, "multiplicative overhead factor")
	fs.Float64("failurerate", d.FailureRate, "multiplicative factor for failed observations")
	fs.Float64("fullsens", d.FullSens, "full survey sensitivity required (Jy/beam)")
	fs.Int("nepoch", d.NEpoch, "number of epochs")
	fs.Float64("effbw", d.EffBW, "effective RFI-free bandwidth (Hz)")
	fs.Int("nant", d.NAnt, "number of antennas")
	fs.Int("nchan", d.NChan, "number of channels (all spectral windows)")
	fs.Float64("rowsep", d.RowSep, "row separation (arcmin)")
	fs.Float64("tdump", d.TDump, "correlator dump time (s)")
	fs.Float64("drlimit", d.DRLimit, "data rate limit (MB/s)")

	fs.Float64("freq", d.Freq, "observing frequency (Hz)")
	fs.Float64("bmax", d.BMax, "longest baseline (m)")
	fs.Float64("sefd", d.SEFD, "system equivalent flux density (Jy)")
	fs.Float64("eta", d.Eta, "correlator efficiency")
	fs.Int("nprod", d.NProd, "polarization products")
}

// loadConfig merges flags, VLASS_* environment variables and the config
// file, in that order of precedence, over the defaults.
func loadConfig(cmd *cobra.Command) (survey.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VLASS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return survey.Config{}, fmt.Errorf("config: bind flags: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("vlass")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			return survey.Config{}, fmt.Errorf("config: %w", err)
		}
	} else {
		slog.Debug("config file", "path", v.ConfigFileUsed())
	}

	var cfg survey.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return survey.Config{}, fmt.Errorf("config: %w", err)
	}
	slog.Debug("survey config", "cfg", fmt.Sprintf("%+v", cfg))
	return cfg, nil
}
