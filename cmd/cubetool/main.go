// cubetool is a headless CLI for exercising the cube core without a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	gomath "math"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/Faultbox/rubikcube/internal/config"
	"github.com/Faultbox/rubikcube/internal/engine/audio"
	"github.com/Faultbox/rubikcube/internal/engine/camera"
	"github.com/Faultbox/rubikcube/internal/rubik"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "quantize", "q":
		err = cmdQuantize(args, os.Stdout)
	case "drag":
		err = cmdDrag(args, os.Stdout)
	case "shuffle":
		err = cmdShuffle(args, os.Stdout)
	case "faces":
		err = cmdFaces(args, os.Stdout)
	case "click":
		err = cmdClick(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cubetool - headless Rubik's Cube utility

Usage:
  cubetool <command> [options]

Commands:
  quantize <degrees>...                  Snap accumulated angles to quarter turns
  drag [options] <x0> <y0> <x1> <y1>      Replay a mouse drag and print the turn
  shuffle [-n moves] [-seed n]           Shuffle a cube and print the moves
  faces [-config file]                   Print the shell rectangles
  click [-turns n] <out.wav>             Write the snap click as WAV

Examples:
  cubetool quantize 50 -100 135
  cubetool drag -steps 8 400 300 470 300
  cubetool shuffle -n 25 -seed 7
  cubetool click -turns 2 click.wav`)
}

func cmdQuantize(args []string, out io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: cubetool quantize <degrees>...")
		return errUsage
	}

	fmt.Fprintf(out, "%10s %6s %12s\n", "ANGLE", "TURNS", "CORRECTION")
	for _, a := range args {
		deg, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q: %w", a, err)
		}
		turns, corr := rubik.Quantize(float32(deg * gomath.Pi / 180))
		fmt.Fprintf(out, "%10.2f %6d %12.2f\n", deg, turns, float64(corr)*180/gomath.Pi)
	}
	return nil
}

// headlessCube builds a cube viewed through an off-screen viewport sized
// like the configured window.
func headlessCube(cfg *config.Config) (*rubik.Cube, *camera.Viewport) {
	cam := camera.NewOrbitCamera()
	cam.SetView(cfg.Camera.Distance, cfg.Camera.Pitch, cfg.Camera.Yaw)

	w, h := cfg.Graphics.Width, cfg.Graphics.Height
	vp := camera.NewViewport(cam, w, h, cfg.Camera.FovDeg*gomath.Pi/180)

	opts := rubik.Options{
		CubeLength:   cfg.Cube.CubeLength,
		Gap:          cfg.Cube.Gap,
		RotateSpeed:  cfg.Cube.RotateSpeed,
		ShuffleSpeed: 0,
	}
	return rubik.New(opts, vp, w, h), vp
}

func cmdDrag(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("drag", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file")
	steps := fs.Int("steps", 10, "Mouse moves between press and release")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 4 || *steps < 1 {
		fmt.Fprintln(os.Stderr, "Usage: cubetool drag [-config file] [-steps n] <x0> <y0> <x1> <y1>")
		return errUsage
	}

	var pts [4]int
	for i := range pts {
		v, err := strconv.Atoi(fs.Arg(i))
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", fs.Arg(i), err)
		}
		pts[i] = v
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	cube, _ := headlessCube(cfg)

	if !cube.Begin(pts[0], pts[1]) {
		fmt.Fprintf(out, "press at (%d, %d) missed the cube\n", pts[0], pts[1])
		return nil
	}
	fmt.Fprintf(out, "face:       %s\n", cube.Session().Face)

	n := *steps
	for i := 1; i <= n; i++ {
		x := pts[0] + (pts[2]-pts[0])*i/n
		y := pts[1] + (pts[3]-pts[1])*i/n
		cube.Update(x, y)
	}

	res, ok := cube.End()
	if !ok {
		return errors.New("no gesture in progress")
	}
	fmt.Fprintf(out, "axis:       %s\n", res.Axis)
	fmt.Fprintf(out, "cells:      %d\n", res.Cells)
	fmt.Fprintf(out, "angle:      %.2f deg\n", float64(res.Angle)*180/gomath.Pi)
	fmt.Fprintf(out, "turns:      %d\n", res.Turns)
	fmt.Fprintf(out, "correction: %.2f deg\n", float64(res.Correction)*180/gomath.Pi)
	fmt.Fprintf(out, "solved:     %v\n", cube.IsSolved())
	return nil
}

func cmdShuffle(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("shuffle", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file")
	n := fs.Int("n", 0, "Number of moves (default from config)")
	seed := fs.Uint64("seed", 1, "Random seed")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	moves := *n
	if moves <= 0 {
		moves = cfg.Cube.ShuffleTurns
	}

	cube, _ := headlessCube(cfg)
	cube.SetRand(rand.New(rand.NewPCG(*seed, *seed)))

	count := 0
	cube.OnSettle(func(r rubik.Result) {
		count++
		fmt.Fprintf(out, "%3d  axis %s  turns %d  cells %d\n", count, r.Axis, r.Turns, r.Cells)
	})
	if !cube.Shuffle(moves) {
		return errors.New("nothing to shuffle")
	}
	fmt.Fprintf(out, "solved: %v\n", cube.IsSolved())
	return nil
}

func cmdFaces(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("faces", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	cube, _ := headlessCube(cfg)

	fmt.Fprintf(out, "half extent %.3f, step %.3f\n", cube.HalfExtent(), cube.Step())
	for f, r := range cube.Faces() {
		fmt.Fprintf(out, "%-7s %v %v %v %v\n", rubik.Face(f), r.A, r.B, r.C, r.D)
	}
	return nil
}

func cmdClick(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("click", flag.ContinueOnError)
	turns := fs.Int("turns", 1, "Quarter turns the click is pitched for")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cubetool click [-turns n] <out.wav>")
		return errUsage
	}

	f, err := os.Create(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := audio.WriteClickWAV(f, audio.DefaultSampleRate, *turns); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", fs.Arg(0))
	return nil
}
