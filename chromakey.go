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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jetsetilly/chromakey/config"
	"github.com/jetsetilly/chromakey/gui/sdlwindow"
	"github.com/jetsetilly/chromakey/logger"
	"github.com/jetsetilly/chromakey/modalflag"
	"github.com/jetsetilly/chromakey/performance"
	"github.com/jetsetilly/chromakey/statsview"
	"github.com/jetsetilly/chromakey/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used once the window is open because
	// the window handles quit requests itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window event handling (including creation) to occur on the main
// thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer wrapped in an interface is not a nil
				// interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "STILL", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "STILL":
		err = still(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// keyingFlags adds the keying flags shared by PLAY and STILL mode to the
// current mode. the defaults are taken from the configuration
type keyingFlags struct {
	color      *string
	similarity *float64
	blend      *float64
	despill    *bool
}

func addKeyingFlags(md *modalflag.Modes, def config.Configuration) keyingFlags {
	return keyingFlags{
		color:      md.AddString("color", def.KeyColor, "key color as #rrggbb"),
		similarity: md.AddFloat64("similarity", float64(def.Similarity), "keying aggressiveness (0 to 1)"),
		blend:      md.AddFloat64("blend", float64(def.Blend), "width of the soft edge (0 to 1)"),
		despill:    md.AddBool("despill", def.Despill, "suppress key color spill on the subject"),
	}
}

func (f keyingFlags) apply(cfg *config.Configuration) {
	cfg.KeyColor = *f.color
	cfg.Similarity = float32(*f.similarity)
	cfg.Blend = float32(*f.blend)
	cfg.Despill = *f.despill
}

// defaults returns the configuration stored in the preferences file. the
// preferences instance is nil if the file could not be prepared
func defaults() (config.Configuration, *config.Preferences) {
	prefs, err := config.NewPreferences()
	if err != nil {
		logger.Log(logger.Allow, "chromakey", err)
		return config.Default(""), nil
	}
	return prefs.Configuration(""), prefs
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	def, prefs := defaults()

	keying := addKeyingFlags(md, def)
	loop := md.AddBool("loop", def.Loop, "restart the source when it ends")
	autoPlay := md.AddBool("autoplay", def.AutoPlay, "start playback immediately")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "NONE", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")

	md.AdditionalHelp("Sources are file paths, URIs or synthetic:WIDTHxHEIGHT")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("video source required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	cfg := config.Default(md.GetArg(0))
	keying.apply(&cfg)
	cfg.Loop = *loop
	cfg.AutoPlay = *autoPlay

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlwindow.NewSdlWindow(cfg, prefs)
	}

	// wait for creator result
	var win *sdlwindow.SdlWindow
	select {
	case g := <-sync.creation:
		win = g.(*sdlwindow.SdlWindow)
	case err := <-sync.creationError:
		return err
	}

	// the window handles ctrl-c as a quit event from here on
	sync.state <- stateRequest{req: reqNoIntSig}

	return performance.RunProfiler(prof, "play", func() error {
		<-win.Quit()
		return nil
	})
}

func still(md *modalflag.Modes) error {
	md.NewMode()

	def, _ := defaults()
	keying := addKeyingFlags(md, def)

	md.AdditionalHelp("Output is always PNG. Input can be PNG, JPEG, GIF, BMP, TIFF or WebP")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("input and output files required for %s mode", md)
	}

	cfg := config.Default(md.GetArg(0))
	keying.apply(&cfg)

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	img, err := decode(md.GetArg(0))
	if err != nil {
		return err
	}

	return encode(md.GetArg(1), params.KeyImage(img))
}

func decode(fn string) (image.Image, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return img, nil
}

func encode(fn string, img image.Image) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}

	err = png.Encode(f, img)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
