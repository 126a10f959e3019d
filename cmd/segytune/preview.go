package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cocosip/go-segy-amptune/preview"
	"github.com/cocosip/go-segy-amptune/segy"
)

type previewConfig struct {
	in     string
	out    string
	width  int
	height int
	clip   float32
}

func (c *previewConfig) validate() error {
	if c.in == "" {
		return errors.New("--in is required")
	}
	if c.out == "" {
		return errors.New("--out is required")
	}
	if c.width < 0 || c.height < 0 {
		return preview.ErrInvalidSize
	}
	if c.clip < 0 {
		return errors.New("--clip must be non-negative")
	}
	return nil
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	cfg := &previewConfig{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a SEG-Y section as a grayscale image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			opts, err := root.segyOptions()
			if err != nil {
				return err
			}
			f, err := segy.ReadFile(cfg.in, opts...)
			if err != nil {
				return err
			}
			img, err := preview.Render(f.Volume.Traces, preview.Options{
				Width:  cfg.width,
				Height: cfg.height,
				Clip:   cfg.clip,
			})
			if err != nil {
				return err
			}
			if err := preview.Save(cfg.out, img); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"out":  cfg.out,
				"size": img.Bounds().Size().String(),
			}).Info("preview written")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.in, "in", "", "input SEG-Y file")
	f.StringVar(&cfg.out, "out", "", "output image (png, bmp, tiff)")
	f.IntVar(&cfg.width, "width", 0, "image width in pixels (default one per trace)")
	f.IntVar(&cfg.height, "height", 0, "image height in pixels (default one per sample)")
	f.Float32Var(&cfg.clip, "clip", 0, "amplitude mapped to black/white (default max |amplitude|)")
	return cmd
}
