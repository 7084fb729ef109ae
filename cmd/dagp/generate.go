// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dispagp/builder"
	"github.com/katalvlaran/dispagp/polygon"
)

type shapeFlags struct {
	width, height, cut, margin int64
	teeth, rooms               int
	toothWidth, toothDepth     int64
	gap, size, door            int64
	spikes                     int
	inner, outer               int64
	scale                      int64
}

func newGenerateCmd() *cobra.Command {
	var f shapeFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated instance as YAML",
	}
	pf := cmd.PersistentFlags()
	pf.Int64Var(&f.scale, "scale", 1, "multiply every coordinate")

	sub := func(use, short string, build func() (*polygon.Instance, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if f.scale < 1 {
					return errors.New("--scale must be at least 1")
				}
				inst, err := build()
				if err != nil {
					return err
				}

				return polygon.Write(cmd.OutOrStdout(), inst)
			},
		}
	}
	opts := func() []builder.Option { return []builder.Option{builder.WithScale(f.scale)} }

	rect := sub("rectangle", "axis-aligned rectangle", func() (*polygon.Instance, error) {
		return builder.Rectangle(f.width, f.height, opts()...)
	})
	rect.Flags().Int64Var(&f.width, "width", 4, "width")
	rect.Flags().Int64Var(&f.height, "height", 4, "height")

	lshape := sub("lshape", "rectangle with one corner cut away", func() (*polygon.Instance, error) {
		return builder.LShape(f.width, f.height, f.cut, opts()...)
	})
	lshape.Flags().Int64Var(&f.width, "width", 4, "width")
	lshape.Flags().Int64Var(&f.height, "height", 4, "height")
	lshape.Flags().Int64Var(&f.cut, "cut", 2, "side of the removed square")

	comb := sub("comb", "spine with rectangular teeth", func() (*polygon.Instance, error) {
		return builder.Comb(f.teeth, f.toothWidth, f.toothDepth, f.gap, opts()...)
	})
	comb.Flags().IntVar(&f.teeth, "teeth", 3, "number of teeth")
	comb.Flags().Int64Var(&f.toothWidth, "tooth-width", 2, "tooth width and spine height")
	comb.Flags().Int64Var(&f.toothDepth, "tooth-depth", 4, "tooth depth")
	comb.Flags().Int64Var(&f.gap, "gap", 2, "gap between teeth")

	frame := sub("frame", "rectangle with a centred rectangular hole", func() (*polygon.Instance, error) {
		return builder.Frame(f.width, f.height, f.margin, opts()...)
	})
	frame.Flags().Int64Var(&f.width, "width", 6, "width")
	frame.Flags().Int64Var(&f.height, "height", 6, "height")
	frame.Flags().Int64Var(&f.margin, "margin", 2, "border width")

	rooms := sub("rooms", "square rooms joined by corridors", func() (*polygon.Instance, error) {
		return builder.RoomChain(f.rooms, f.size, f.door, opts()...)
	})
	rooms.Flags().IntVar(&f.rooms, "rooms", 3, "number of rooms")
	rooms.Flags().Int64Var(&f.size, "size", 4, "room side")
	rooms.Flags().Int64Var(&f.door, "door", 2, "corridor width and length")

	star := sub("star", "star with alternating outer and inner vertices", func() (*polygon.Instance, error) {
		return builder.Star(f.spikes, f.inner, f.outer, opts()...)
	})
	star.Flags().IntVar(&f.spikes, "spikes", 5, "number of spikes")
	star.Flags().Int64Var(&f.inner, "inner", 40, "inner radius")
	star.Flags().Int64Var(&f.outer, "outer", 100, "outer radius")

	cmd.AddCommand(rect, lshape, comb, frame, rooms, star)

	return cmd
}
