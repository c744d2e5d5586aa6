// Command snapshot renders a single frame of the orbit viewer offscreen
// and writes it as a PNG. Handy for eyeballing scene changes without a
// window, and for docs.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"orbview/hal"
	"orbview/orbgl"
	"orbview/view"
)

func main() {
	var (
		out    = flag.String("o", "snapshot.png", "Output PNG path.")
		width  = flag.Int("width", 640, "Frame width in pixels.")
		height = flag.Int("height", 480, "Frame height in pixels.")
		points = flag.String("points", "", "Seed markers: \"x,y,z;x,y,z;...\", snapped onto the sphere.")
		yaw    = flag.Float64("yaw", 0, "Camera yaw in radians.")
		pitch  = flag.Float64("pitch", 0, "Camera pitch in radians.")
	)
	flag.Parse()

	if err := run(*out, *width, *height, *points, *yaw, *pitch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string, width, height int, points string, yaw, pitch float64) error {
	h := hal.NewMem(hal.Options{Width: width, Height: height})
	v := view.New(h, view.Options{})
	defer v.Close()

	seeds, err := parsePoints(points)
	if err != nil {
		return err
	}
	for _, p := range seeds {
		v.Store().Add(orbgl.Normalize(p).Mul(view.SphereRadius))
	}

	v.SetOrbit(orbgl.Scalar(yaw), orbgl.Scalar(pitch))
	if err := v.Step(); err != nil {
		return err
	}

	fb := h.Display().Framebuffer()
	img := &image.RGBA{
		Pix:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return nil
}

// parsePoints reads "x,y,z;x,y,z;..." into vectors.
func parsePoints(s string) ([]orbgl.Vec3, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []orbgl.Vec3
	for _, part := range strings.Split(s, ";") {
		comps := strings.Split(part, ",")
		if len(comps) != 3 {
			return nil, fmt.Errorf("bad point %q (want x,y,z)", part)
		}
		var v [3]float64
		for i, c := range comps {
			f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
			if err != nil {
				return nil, fmt.Errorf("bad point %q: %w", part, err)
			}
			v[i] = f
		}
		p := orbgl.V3(orbgl.Scalar(v[0]), orbgl.Scalar(v[1]), orbgl.Scalar(v[2]))
		if orbgl.Len(p) < 1e-6 {
			return nil, fmt.Errorf("bad point %q: zero length, cannot project onto the sphere", part)
		}
		out = append(out, p)
	}
	return out, nil
}
