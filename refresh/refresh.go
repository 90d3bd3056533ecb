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

package refresh

// Handle identifies a requested callback. The zero value is never returned by
// Request() and can be used to indicate that there is no pending callback.
type Handle uint64

// Requester is the interface used by packages that need to schedule work for
// the next display refresh.
type Requester interface {
	Request(f func()) Handle
	Cancel(h Handle)
}

type callback struct {
	handle Handle
	f      func()
}

// Queue of callbacks waiting for the next display refresh. The zero value is
// ready to use.
type Queue struct {
	last    Handle
	pending []callback

	// callbacks being run by Run(). a callback that is cancelled during Run()
	// is removed from here
	running []callback
}

// Request adds a callback to be run on the next display refresh.
func (q *Queue) Request(f func()) Handle {
	q.last++
	q.pending = append(q.pending, callback{handle: q.last, f: f})
	return q.last
}

// Cancel a previously requested callback. Cancelling a callback that has
// already run, or that has already been cancelled, does nothing.
func (q *Queue) Cancel(h Handle) {
	if h == 0 {
		return
	}
	q.pending = remove(q.pending, h)
	q.running = remove(q.running, h)
}

func remove(l []callback, h Handle) []callback {
	for i := range l {
		if l[i].handle == h {
			return append(l[:i], l[i+1:]...)
		}
	}
	return l
}

// Run all callbacks requested before the call to Run(). Returns the number of
// callbacks run.
func (q *Queue) Run() int {
	q.running, q.pending = q.pending, nil

	n := 0
	for len(q.running) > 0 {
		c := q.running[0]
		q.running = q.running[1:]
		c.f()
		n++
	}
	q.running = nil

	return n
}

// Pending returns the number of callbacks waiting to be run.
func (q *Queue) Pending() int {
	return len(q.pending) + len(q.running)
}
