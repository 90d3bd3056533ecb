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

package performance_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/chromakey/performance"
	"github.com/jetsetilly/chromakey/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile("Mem, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileMem|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "MEM,TRACE")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2*time.Second, 60)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(60, 2*time.Second, 60)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.001)

	fps, accuracy = performance.CalcFPS(60, 0, 60)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	wd, wdErr := os.Getwd()
	test.ExpectSuccess(t, wdErr)
	test.ExpectSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat("test_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("test_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("test_trace.profile")
	test.ExpectFailure(t, err)

	runErr := errors.New("run failed")
	err = performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return runErr
	})
	test.ExpectSuccess(t, errors.Is(err, runErr))
}
