package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-segy-amptune/codec"
	"github.com/cocosip/go-segy-amptune/segy"
)

func newInfoCmd(root *rootOptions) *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Print the geometry and headers of a SEG-Y file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.segyOptions()
			if err != nil {
				return err
			}
			f, err := segy.ReadFile(args[0], opts...)
			if err != nil {
				return err
			}
			return printInfo(cmd, args[0], f, showText)
		},
	}
	cmd.Flags().BoolVar(&showText, "text", false, "print the textual header")
	return cmd
}

func printInfo(cmd *cobra.Command, path string, f *segy.File, showText bool) error {
	out := cmd.OutOrStdout()

	format := f.BinaryHeader.FormatCode()
	formatName := "unknown"
	if c, err := codec.ForFormatCode(format); err == nil {
		formatName = c.Name()
	}

	fmt.Fprintf(out, "file:             %s\n", path)
	fmt.Fprintf(out, "traces:           %d\n", f.Volume.NumTraces())
	fmt.Fprintf(out, "samples/trace:    %d\n", f.Volume.NumSamples())
	fmt.Fprintf(out, "sample interval:  %g ms\n", f.Volume.DTMillis())
	fmt.Fprintf(out, "record length:    %g ms\n", float32(f.Volume.NumSamples())*f.Volume.DTMillis())
	fmt.Fprintf(out, "format code:      %d (%s)\n", format, formatName)

	if !showText {
		return nil
	}

	lines, err := f.TextHeader.Lines()
	if err != nil {
		return err
	}
	encoding := "ASCII"
	if f.TextHeader.IsEBCDIC() {
		encoding = "EBCDIC"
	}
	fmt.Fprintf(out, "text header (%s):\n", encoding)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
