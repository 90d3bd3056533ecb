// This file is part of Chromakey.
//
// Chromakey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chromakey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chromakey.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/chromakey/config"
	"github.com/jetsetilly/chromakey/modalflag"
	"github.com/jetsetilly/chromakey/test"
)

// the preferences file is created in the temporary directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func stillModes(args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs(args)
	md.NewMode()
	return md
}

func TestStill(t *testing.T) {
	dir := isolate(t)

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})

	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	test.ExpectSuccess(t, encode(in, src))

	test.ExpectSuccess(t, still(stillModes(in, out)))

	img, err := decode(out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 2)

	_, _, _, a := img.At(0, 0).RGBA()
	test.ExpectEquality(t, a, uint32(0))
	_, _, _, a = img.At(1, 0).RGBA()
	test.ExpectEquality(t, a, uint32(0xffff))
}

func TestStillArguments(t *testing.T) {
	dir := isolate(t)

	test.ExpectFailure(t, still(stillModes()))
	test.ExpectFailure(t, still(stillModes(filepath.Join(dir, "in.png"))))

	// missing input file
	test.ExpectFailure(t, still(stillModes(filepath.Join(dir, "in.png"), filepath.Join(dir, "out.png"))))

	_, err := os.Stat(filepath.Join(dir, "out.png"))
	test.ExpectFailure(t, err)
}

func TestStillInvalidColor(t *testing.T) {
	dir := isolate(t)

	in := filepath.Join(dir, "in.png")
	test.ExpectSuccess(t, encode(in, image.NewNRGBA(image.Rect(0, 0, 1, 1))))

	err := still(stillModes("-color", "notacolor", in, filepath.Join(dir, "out.png")))
	test.ExpectFailure(t, err)
}

func TestKeyingFlags(t *testing.T) {
	md := stillModes("-similarity", "0.5", "-despill=false")
	flags := addKeyingFlags(md, config.Default(""))

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	cfg := config.Default("")
	flags.apply(&cfg)
	test.ExpectEquality(t, cfg.KeyColor, config.DefaultKeyColor)
	test.ExpectApproximate(t, cfg.Similarity, 0.5, 0.0001)
	test.ExpectApproximate(t, cfg.Blend, config.DefaultBlend, 0.0001)
	test.ExpectEquality(t, cfg.Despill, false)
}

func BenchmarkKeyImage(b *testing.B) {
	params, err := config.Default("").Params()
	if err != nil {
		b.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	b.ResetTimer()
	for b.Loop() {
		_ = params.KeyImage(img)
	}
}

func TestKeyingFlagsHelp(t *testing.T) {
	w := &test.Writer{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.NewMode()
	_ = addKeyingFlags(md, config.Default(""))

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	// only the six digit form is accepted by the color parser
	test.ExpectSuccess(t, strings.Contains(w.String(), `key color as #rrggbb (default "#00ff00")`))
	test.ExpectSuccess(t, !strings.Contains(w.String(), "#rgb"))
}
