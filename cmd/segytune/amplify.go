package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cocosip/go-segy-amptune/amplify"
	"github.com/cocosip/go-segy-amptune/grid"
	"github.com/cocosip/go-segy-amptune/preview"
	"github.com/cocosip/go-segy-amptune/segy"
)

type amplifyConfig struct {
	in        string
	out       string
	reference string
	maskImage string
	points    []string

	mode             string
	scale            float32
	transitionTraces int
	transitionMs     float32
	transitionMode   string
	alignTraces      int
	alignMs          float32
}

func (c *amplifyConfig) validate() error {
	if c.in == "" {
		return errors.New("--in is required")
	}
	if c.out == "" {
		return errors.New("--out is required")
	}
	if len(c.points) == 0 {
		return errors.New("at least one --point is required")
	}
	_, err := c.params()
	return err
}

func (c *amplifyConfig) params() (amplify.Params, error) {
	mode, err := amplify.ParseMode(c.mode)
	if err != nil {
		return amplify.Params{}, err
	}
	tm, err := amplify.ParseTransitionMode(c.transitionMode)
	if err != nil {
		return amplify.Params{}, err
	}
	p := amplify.Params{
		Mode:             mode,
		ScaleFactor:      c.scale,
		TransitionTraces: c.transitionTraces,
		TransitionMs:     c.transitionMs,
		Transition:       tm,
		AlignTraces:      c.alignTraces,
		AlignMs:          c.alignMs,
	}
	return p, p.Validate()
}

// referencePath is the file whose headers are copied to the output
func (c *amplifyConfig) referencePath() string {
	if c.reference != "" {
		return c.reference
	}
	return c.in
}

func newAmplifyCmd(root *rootOptions) *cobra.Command {
	cfg := &amplifyConfig{}
	def := amplify.DefaultParams()

	cmd := &cobra.Command{
		Use:   "amplify",
		Short: "Scale or RMS-align the amplitudes inside a window",
		Long: `Scale or RMS-align the amplitudes inside a window.

The window is given by --point TRACE,MS values: one point selects a single
sample, two points a rectangle and three or more a polygon.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return runAmplify(cmd, root, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.in, "in", "", "input SEG-Y file")
	f.StringVar(&cfg.out, "out", "", "output SEG-Y file")
	f.StringVar(&cfg.reference, "reference", "", "file whose headers are written to the output (default --in)")
	f.StringVar(&cfg.maskImage, "mask-image", "", "also write the gain multiplier as an image (png, bmp, tiff)")
	f.StringArrayVarP(&cfg.points, "point", "p", nil, "window vertex TRACE,MS (repeatable)")
	f.StringVar(&cfg.mode, "mode", def.Mode.String(), "gain mode: scale or align")
	f.Float32Var(&cfg.scale, "scale", def.ScaleFactor, "gain factor in scale mode")
	f.IntVar(&cfg.transitionTraces, "transition-traces", 0, "transition width in traces (0 for a hard edge)")
	f.Float32Var(&cfg.transitionMs, "transition-ms", 0, "transition width in milliseconds (0 for a hard edge)")
	f.StringVar(&cfg.transitionMode, "transition-mode", def.Transition.String(), "transition side: outside or inside")
	f.IntVar(&cfg.alignTraces, "align-traces", 10, "align mode: reference region margin in traces")
	f.Float32Var(&cfg.alignMs, "align-ms", 100, "align mode: reference region margin in milliseconds")
	return cmd
}

func runAmplify(cmd *cobra.Command, root *rootOptions, cfg *amplifyConfig) error {
	opts, err := root.segyOptions()
	if err != nil {
		return err
	}
	params, err := cfg.params()
	if err != nil {
		return err
	}
	sel, err := parseSelection(cfg.points)
	if err != nil {
		return err
	}

	src, err := segy.ReadFile(cfg.in, opts...)
	if err != nil {
		return err
	}

	res, err := amplify.Amplify(src.Volume.Traces, src.Volume.DTMillis(), sel, params)
	if err != nil {
		return fmt.Errorf("amplify %s: %w", cfg.in, err)
	}

	w, err := segy.NewWriter(cfg.referencePath(), opts...)
	if err != nil {
		return err
	}
	var g errgroup.Group
	g.Go(func() error {
		return w.WriteFile(cfg.out, res.Output, src.Volume.DT)
	})
	if cfg.maskImage != "" {
		g.Go(func() error {
			return saveMultiplier(cfg.maskImage, res.Multiplier)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"in":        filepath.Base(cfg.in),
		"out":       cfg.out,
		"selection": sel.Kind().String(),
		"cells":     res.Window.Count(),
		"gain":      res.Gain,
	}).Info("amplitudes adjusted")

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cells, gain %g\n", cfg.out, res.Window.Count(), res.Gain)
	return nil
}

// saveMultiplier renders the multiplier field: unity gain is black and the
// multiplier furthest from unity is white
func saveMultiplier(path string, m *grid.FloatMask) error {
	peak := lo.Max(m.Data)
	if lowest := lo.Min(m.Data); lowest < 1 {
		peak = lowest
	}
	img, err := preview.RenderMask(m, 1, peak, preview.Options{})
	if err != nil {
		return err
	}
	return preview.Save(path, img)
}
