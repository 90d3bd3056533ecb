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
	"runtime"
	"time"

	"github.com/jetsetilly/chromakey/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// list of swap interval values. with the exception of syncTicker all of these
// are values defined and expected by the SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
	syncTicker              = 2
)

// fallback refresh rate if the display mode cannot be determined
const defaultRefreshRate = 60

type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// use ticker to synchronise with monitor if vsync is not available
	syncTicker *time.Ticker
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(title string) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	for _, attr := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_ALPHA_SIZE, 8},
	} {
		err = sdl.GLSetAttribute(attr.attr, attr.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "display mode: %v", err)
		plt.mode.RefreshRate = defaultRefreshRate
	}
	if plt.mode.RefreshRate <= 0 {
		plt.mode.RefreshRate = defaultRefreshRate
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	// window size is set when the first frame is drawn
	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		640, 480,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.setSwapInterval(syncWithVerticalRetrace)

	return plt, nil
}

func (plt *platform) setSwapInterval(i int) {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
		plt.syncTicker = nil
	}

	if i == syncTicker {
		d := time.Second / time.Duration(plt.mode.RefreshRate)
		plt.syncTicker = time.NewTicker(d)
		i = syncImmediateUpdate
	}

	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)

		// fall back to the ticker if vertical retrace is not available
		if plt.syncTicker == nil {
			plt.setSwapInterval(syncTicker)
		}
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
		plt.syncTicker = nil
	}

	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// swap the window buffers, waiting for the ticker if necessary.
func (plt *platform) swap() {
	if plt.syncTicker != nil {
		<-plt.syncTicker.C
	}
	plt.window.GLSwap()
}

// wait for one refresh without swapping buffers
func (plt *platform) wait() {
	if plt.syncTicker != nil {
		<-plt.syncTicker.C
		return
	}
	sdl.Delay(uint32(1000 / plt.mode.RefreshRate))
}

// keyMod returns the current keyboard modifier state
func keyMod() sdl.Keymod {
	return sdl.GetModState()
}
