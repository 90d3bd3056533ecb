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

package media

import (
	"context"
	"fmt"
	"image"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/logger"
	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"
)

// the caps requested from the decoder. frames are always delivered as
// packed 8bit RGBA
const sinkCaps = "video/x-raw,format=RGBA"

// how long the bus monitor waits for a message before checking for
// cancellation
const busPoll = 50 * time.Millisecond

// GStreamer decodes media with a GStreamer playbin element. Audio is muted.
type GStreamer struct {
	locator string
	loop    bool

	playbin *gst.Element
	sink    *app.Sink

	events chan Event

	// the most recent frame. written by the appsink callback
	crit  sync.Mutex
	frame *image.RGBA

	loaded atomic.Bool
	paused atomic.Bool
	ended  atomic.Bool

	// cancels the bus monitor
	cancel context.CancelFunc
	done   chan struct{}
}

// uri returns the locator as a URI. locators without a scheme are treated as
// filenames
func uri(locator string) (string, error) {
	if strings.Contains(locator, "://") {
		return locator, nil
	}
	abs, err := filepath.Abs(locator)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// NewGStreamer creates a new source for the media at locator. The pipeline is
// prerolled so that the first frame is decoded before playback begins.
func NewGStreamer(locator string, loop bool) (*GStreamer, error) {
	u, err := uri(locator)
	if err != nil {
		return nil, curated.Errorf(SourceFailure, err)
	}

	gst.Init(nil)

	src := &GStreamer{
		locator: locator,
		loop:    loop,
		events:  make(chan Event, eventQueueLen),
		done:    make(chan struct{}),
	}
	src.paused.Store(true)

	src.playbin, err = gst.NewElement("playbin")
	if err != nil {
		return nil, curated.Errorf(SourceFailure, fmt.Errorf("playbin: %w", err))
	}
	src.playbin.SetProperty("uri", u)
	src.playbin.SetProperty("mute", true)

	src.sink, err = app.NewAppSink()
	if err != nil {
		return nil, curated.Errorf(SourceFailure, fmt.Errorf("appsink: %w", err))
	}
	src.sink.SetCaps(gst.NewCapsFromString(sinkCaps))
	src.sink.SetDrop(true)
	src.sink.SetMaxBuffers(1)
	src.sink.SetCallbacks(&app.SinkCallbacks{
		NewPrerollFunc: func(sink *app.Sink) gst.FlowReturn {
			return src.store(sink.PullPreroll())
		},
		NewSampleFunc: func(sink *app.Sink) gst.FlowReturn {
			return src.store(sink.PullSample())
		},
	})
	src.playbin.SetProperty("video-sink", src.sink.Element)

	var ctx context.Context
	ctx, src.cancel = context.WithCancel(context.Background())
	go src.monitor(ctx)

	err = src.playbin.SetState(gst.StatePaused)
	if err != nil {
		src.cancel()
		<-src.done
		_ = src.playbin.SetState(gst.StateNull)
		return nil, curated.Errorf(SourceFailure, err)
	}

	logger.Logf(logger.Allow, "gstreamer", "opened %s", u)

	return src, nil
}

// send an event without blocking. events are dropped if the queue is full
func (src *GStreamer) send(ev Event) {
	select {
	case src.events <- ev:
	default:
		logger.Logf(logger.Allow, "gstreamer", "dropped %s event", ev)
	}
}

// store the data in sample as the most recent frame. called by GStreamer on
// one of its streaming threads
func (src *GStreamer) store(sample *gst.Sample) gst.FlowReturn {
	if sample == nil {
		return gst.FlowOK
	}

	buffer := sample.GetBuffer()
	if buffer == nil {
		return gst.FlowOK
	}

	width, height, ok := dimensions(sample.GetCaps())
	if !ok {
		logger.Log(logger.Allow, "gstreamer", "sample without dimensions")
		return gst.FlowOK
	}

	mapInfo := buffer.Map(gst.MapRead)
	data := mapInfo.Bytes()
	if len(data) < width*height*4 {
		buffer.Unmap()
		logger.Logf(logger.Allow, "gstreamer", "short buffer (%d bytes for %dx%d)", len(data), width, height)
		return gst.FlowOK
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, data)
	buffer.Unmap()

	src.crit.Lock()
	src.frame = img
	src.crit.Unlock()

	if !src.loaded.Swap(true) {
		src.send(EventLoaded)
	}

	return gst.FlowOK
}

// dimensions of the video described by caps
func dimensions(caps *gst.Caps) (int, int, bool) {
	if caps == nil || caps.GetSize() == 0 {
		return 0, 0, false
	}
	st := caps.GetStructureAt(0)
	w, err := st.GetValue("width")
	if err != nil {
		return 0, 0, false
	}
	h, err := st.GetValue("height")
	if err != nil {
		return 0, 0, false
	}
	width, ok := w.(int)
	if !ok {
		return 0, 0, false
	}
	height, ok := h.(int)
	if !ok {
		return 0, 0, false
	}
	return width, height, width > 0 && height > 0
}

// monitor the pipeline bus until the context is cancelled
func (src *GStreamer) monitor(ctx context.Context) {
	defer close(src.done)

	bus := src.playbin.GetBus()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg := bus.TimedPop(busPoll)
		if msg == nil {
			continue
		}

		switch msg.Type() {
		case gst.MessageEOS:
			if src.loop {
				if !src.rewind() {
					logger.Log(logger.Allow, "gstreamer", "loop: seek failed")
				}
				continue
			}
			src.paused.Store(true)
			src.ended.Store(true)
			src.send(EventEnded)

		case gst.MessageError:
			gerr := msg.ParseError()
			logger.Logf(logger.Allow, "gstreamer", "%s (%s)", gerr.Error(), gerr.DebugString())
			src.send(EventError)

		case gst.MessageStateChanged:
			if msg.Source() != src.playbin.GetName() {
				continue
			}
			from, to := msg.ParseStateChanged()
			switch {
			case to == gst.StatePlaying:
				src.paused.Store(false)
				src.send(EventPlaying)
			case to == gst.StatePaused && from == gst.StatePlaying:
				src.paused.Store(true)
				src.send(EventPaused)
			}
		}
	}
}

// seek to the start of the media
func (src *GStreamer) rewind() bool {
	return src.playbin.SeekSimple(0, gst.FormatTime, gst.SeekFlagFlush|gst.SeekFlagKeyUnit)
}

// Events implements the Source interface.
func (src *GStreamer) Events() <-chan Event {
	return src.events
}

// Frame implements the Source interface.
func (src *GStreamer) Frame() *image.RGBA {
	src.crit.Lock()
	defer src.crit.Unlock()
	return src.frame
}

// Paused implements the Source interface.
func (src *GStreamer) Paused() bool {
	return src.paused.Load()
}

// Ended implements the Source interface.
func (src *GStreamer) Ended() bool {
	return src.ended.Load()
}

// Play implements the Source interface.
func (src *GStreamer) Play() error {
	if src.ended.Load() {
		if !src.rewind() {
			return curated.Errorf(PlaybackStartFailure, "seek failed")
		}
		src.ended.Store(false)
	}

	err := src.playbin.SetState(gst.StatePlaying)
	if err != nil {
		return curated.Errorf(PlaybackStartFailure, err)
	}
	src.paused.Store(false)

	return nil
}

// Pause implements the Source interface.
func (src *GStreamer) Pause() error {
	if src.paused.Load() {
		return nil
	}
	err := src.playbin.SetState(gst.StatePaused)
	if err != nil {
		return curated.Errorf(SourceFailure, err)
	}
	src.paused.Store(true)
	return nil
}

// Close implements the Source interface.
func (src *GStreamer) Close() error {
	src.cancel()
	<-src.done

	err := src.playbin.SetState(gst.StateNull)

	src.crit.Lock()
	src.frame = nil
	src.crit.Unlock()

	src.paused.Store(true)

	logger.Logf(logger.Allow, "gstreamer", "closed %s", src.locator)

	if err != nil {
		return curated.Errorf(SourceFailure, err)
	}
	return nil
}
