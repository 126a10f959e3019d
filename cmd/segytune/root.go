package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cocosip/go-segy-amptune/codec"
	"github.com/cocosip/go-segy-amptune/segy"
	_ "github.com/cocosip/go-segy-amptune/segy/ibmfloat"
	_ "github.com/cocosip/go-segy-amptune/segy/ieeefloat"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	codec     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "segytune",
		Short:         "Tune amplitudes inside a region of a SEG-Y section",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging()
		},
	}

	opts.bindFlags(cmd.PersistentFlags())
	cmd.AddCommand(newInfoCmd(opts), newAmplifyCmd(opts), newPreviewCmd(opts))
	return cmd
}

func (o *rootOptions) bindFlags(f *pflag.FlagSet) {
	f.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&o.logFormat, "log-format", "text", "log format (text, json)")
	f.StringVar(&o.codec, "codec", "", "sample codec name or SEG-Y format code (default: from the file header, else ibm-float)")
}

func (o *rootOptions) setupLogging() error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	switch strings.ToLower(o.logFormat) {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", o.logFormat)
	}

	logrus.AddHook(runIDHook{id: uuid.NewString()})
	return nil
}

// segyOptions returns the reader/writer options selected by --codec. Without
// it the codec follows each file's format code.
func (o *rootOptions) segyOptions() ([]segy.Option, error) {
	if o.codec == "" {
		return []segy.Option{segy.WithFormatDetection()}, nil
	}
	c, err := codec.Get(o.codec)
	if err != nil {
		return nil, err
	}
	return []segy.Option{segy.WithSampleCodec(c)}, nil
}

// runIDHook tags every entry with the id of the current invocation
type runIDHook struct {
	id string
}

func (h runIDHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h runIDHook) Fire(e *logrus.Entry) error {
	e.Data["run_id"] = h.id
	return nil
}
