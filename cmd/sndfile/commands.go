// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

type InfoCmd struct {
	Files []string `arg:"" name:"file" help:"Sound files to describe."`
}

func (c *InfoCmd) Run(a *app) error {
	failed := 0
	for _, path := range c.Files {
		in, err := a.factory.OpenInputFile(path)
		if err != nil {
			fmt.Fprintf(a.out, "%s: %v\n", path, err)
			failed++
			continue
		}

		info := in.Info()
		fmt.Fprintf(a.out, "%s: format=%s rate=%d channels=%d samples=%d duration=%v\n",
			path, in.Format(), info.SampleRate, info.ChannelCount, info.SampleCount, in.Duration())
		if err := in.Close(); err != nil {
			a.logger.Warn("closing sound file", zap.String("path", path), zap.Error(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(c.Files))
	}
	return nil
}

type ConvertCmd struct {
	In  string `arg:"" name:"in" help:"Sound file to read."`
	Out string `arg:"" name:"out" help:"File to write; .wav or .flac."`
}

func (c *ConvertCmd) Run(a *app) (err error) {
	in, err := a.factory.OpenInputFile(c.In)
	if err != nil {
		return err
	}
	defer in.Close()

	info := in.Info()
	out, err := a.factory.CreateOutputFile(c.Out, info.SampleRate, info.ChannelCount)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(c.Out)
		}
	}()

	buf := make([]int16, a.cfg.Convert.ChunkSamples)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if err := out.Write(buf[:n]); err != nil {
				return fmt.Errorf("writing %s: %w", c.Out, err)
			}
		}
		if errors.Is(rerr, io.EOF) || (rerr == nil && n == 0) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("reading %s: %w", c.In, rerr)
		}
	}

	a.logger.Info("converted sound file",
		zap.String("in", c.In),
		zap.String("out", c.Out),
		zap.String("format", in.Format()),
		zap.Uint64("samples", out.Written()))
	fmt.Fprintf(a.out, "wrote %d samples to %s\n", out.Written(), c.Out)
	return nil
}

type FormatsCmd struct{}

func (c *FormatsCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "readers: %s\n", strings.Join(a.factory.ReaderFormats(), ", "))
	fmt.Fprintf(a.out, "writers: %s\n", strings.Join(a.factory.WriterFormats(), ", "))
	return nil
}
