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

package sdlwindow

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/chromakey/config"
	"github.com/jetsetilly/chromakey/gui"
	"github.com/jetsetilly/chromakey/keying"
	"github.com/jetsetilly/chromakey/lifecycle"
	"github.com/jetsetilly/chromakey/logger"
	"github.com/jetsetilly/chromakey/media"
	"github.com/jetsetilly/chromakey/paths"
	"github.com/jetsetilly/chromakey/performance"
	"github.com/jetsetilly/chromakey/refresh"
	"github.com/jetsetilly/chromakey/renderer"
	"github.com/jetsetilly/chromakey/scheduler"
	"github.com/jetsetilly/chromakey/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SdlWindow is the host environment of the PLAY mode.
type SdlWindow struct {
	plt   *platform
	queue refresh.Queue
	mgr   *lifecycle.Manager

	// preferences are saved with the S key. can be nil
	prefs *config.Preferences

	// the configuration most recently requested by the user
	cfg config.Configuration

	// the time the current session was created
	started time.Time

	// the window is shown when the first frame is drawn
	shown bool

	// a screenshot has been requested and will be taken after the next
	// refresh
	screenshot bool

	// closed when the user asks to quit
	quit     chan struct{}
	quitting bool
}

// NewSdlWindow creates the window and applies the configuration. The
// preferences are used to save the configuration when the user asks and can
// be nil.
//
// Must be called from the main thread.
func NewSdlWindow(cfg config.Configuration, prefs *config.Preferences) (*SdlWindow, error) {
	win := &SdlWindow{
		prefs: prefs,
		cfg:   cfg,
		quit:  make(chan struct{}),
	}

	var err error
	win.plt, err = newPlatform(version.ApplicationName)
	if err != nil {
		return nil, err
	}

	win.mgr = lifecycle.NewManager(win)

	err = win.apply(cfg)
	if err != nil {
		win.mgr.Unmount()
		_ = win.plt.destroy()
		return nil, err
	}

	return win, nil
}

// Quit returns a channel that is closed when the user asks to quit.
func (win *SdlWindow) Quit() <-chan struct{} {
	return win.quit
}

// Destroy tears down the current session and closes the window. Must be
// called from the main thread.
func (win *SdlWindow) Destroy(output io.Writer) {
	win.report()
	win.mgr.Unmount()
	err := win.plt.destroy()
	if err != nil && output != nil {
		fmt.Fprintln(output, err)
	}
}

// Service the window. Must be called from the main thread.
func (win *SdlWindow) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.requestQuit()

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			win.handleKey(gui.EventDataKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Down: true,
				Mod:  modifier(keyMod()),
			})
		}
	}

	win.queue.Run()

	// the back buffer is undefined if nothing was drawn during this refresh so
	// the window is only swapped after a draw
	s := win.mgr.Session()
	drew := s != nil && s.Scheduler() != nil && s.Scheduler().Drew()

	if win.screenshot {
		win.screenshot = false
		win.takeScreenshot(drew)
	}

	if drew {
		win.plt.swap()
	} else {
		win.plt.wait()
	}
}

func modifier(mod sdl.Keymod) gui.KeyMod {
	switch {
	case mod&sdl.KMOD_ALT != 0:
		return gui.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return gui.KeyModShift
	case mod&sdl.KMOD_CTRL != 0:
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

func (win *SdlWindow) requestQuit() {
	if win.quitting {
		return
	}
	win.quitting = true
	close(win.quit)
}

func (win *SdlWindow) handleKey(ev gui.EventDataKeyboard) {
	act := gui.ActionForKey(ev)

	switch act {
	case gui.ActionNone:
		return

	case gui.ActionQuit:
		win.requestQuit()

	case gui.ActionTogglePause:
		if err := win.mgr.TogglePause(); err != nil {
			logger.Log(logger.Allow, "sdlwindow", err)
		}

	case gui.ActionScreenshot:
		win.screenshot = true

	case gui.ActionSavePrefs:
		if win.prefs == nil {
			return
		}
		if err := win.prefs.Save(win.cfg); err != nil {
			logger.Log(logger.Allow, "sdlwindow", err)
			return
		}
		logger.Log(logger.Allow, "sdlwindow", "preferences saved")

	default:
		cfg, ok := act.Configure(win.cfg)
		if !ok {
			return
		}
		if err := win.apply(cfg); err != nil {
			logger.Log(logger.Allow, "sdlwindow", err)
		}
	}
}

func (win *SdlWindow) apply(cfg config.Configuration) error {
	win.report()
	win.cfg = cfg
	win.started = time.Now()
	win.plt.window.SetTitle(fmt.Sprintf("%s - %s [similarity %.2f blend %.2f despill %v]",
		version.ApplicationName, cfg.Source, cfg.Similarity, cfg.Blend, cfg.Despill))
	return win.mgr.Apply(cfg)
}

// report the frame rate of the current session to the log
func (win *SdlWindow) report() {
	s := win.mgr.Session()
	if s == nil || s.Scheduler() == nil {
		return
	}
	frames := s.Scheduler().Frames()
	if frames == 0 {
		return
	}
	fps, accuracy := performance.CalcFPS(frames, time.Since(win.started), int(win.plt.mode.RefreshRate))
	logger.Logf(logger.Allow, s.String(), "%d frames at %.2f fps (%.1f%% of refresh rate)", frames, fps, accuracy)
}

// takeScreenshot of the current frame. if the frame was not drawn during this
// refresh then the most recently uploaded frame is drawn again
func (win *SdlWindow) takeScreenshot(drew bool) {
	s := win.mgr.Session()
	if s == nil {
		return
	}

	rnd, ok := s.Renderer().(*renderer.Renderer)
	if !ok {
		return
	}

	if !drew {
		if s.Scheduler().Frames() == 0 {
			logger.Log(logger.Allow, "screenshot", "no frame to capture")
			return
		}
		rnd.Draw()
	}

	img := rnd.Screenshot()
	if img == nil {
		return
	}

	fn := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", win.cfg.Source))

	// encoding can be slow so it happens in the background
	go func(img image.Image) {
		err := savePNG(fn, img)
		if err != nil {
			logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
			return
		}
		logger.Logf(logger.Allow, "screenshot", "saved to %s", fn)
	}(img)
}

func savePNG(fn string, img image.Image) error {
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

// NewRenderer implements the lifecycle.Factory interface.
func (win *SdlWindow) NewRenderer(params keying.Params) (lifecycle.Renderer, error) {
	rnd, err := renderer.NewRenderer(params)
	if err != nil {
		return nil, err
	}
	return rnd, nil
}

// NewSource implements the lifecycle.Factory interface.
func (win *SdlWindow) NewSource(locator string, loop bool) (media.Source, error) {
	return media.Open(locator, loop)
}

// Surface implements the lifecycle.Factory interface.
func (win *SdlWindow) Surface() scheduler.Surface {
	return win
}

// Refresh implements the lifecycle.Factory interface.
func (win *SdlWindow) Refresh() refresh.Requester {
	return &win.queue
}

// SetSize implements the scheduler.Surface interface.
func (win *SdlWindow) SetSize(width int32, height int32) {
	win.plt.window.SetSize(width, height)
	if !win.shown {
		win.shown = true
		win.plt.window.Show()
	}
}
