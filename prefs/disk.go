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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/jetsetilly/chromakey/curated"
)

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value
const separator = " :: "

// NoPrefsFile is the pattern of the error returned by Load() when the file
// does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents the preferences file and the values saved to it.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	var s strings.Builder
	for _, k := range dsk.keys() {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// sorted list of keys. must be called with the critical section held
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add a preference value to the disk instance. Keys must be unique and must
// not contain the separator or newlines.
func (dsk *Disk) Add(key string, p Pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if key == "" || strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, "\r\n") {
		return fmt.Errorf("prefs: invalid key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p

	return nil
}

// read the preferences file. returns the key/value pairs in the order they
// appear in the file
func read(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	var pairs [][2]string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}
		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(k), strings.TrimSpace(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return pairs, nil
}

// Save all values to disk. Entries in the existing file with keys not added
// to this disk instance are kept.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values := make(map[string]string)

	pairs, err := read(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	for _, p := range pairs {
		values[p[0]] = p[1]
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, values[k])
	}

	err = w.Flush()
	if err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load values from disk. If the file does not exist and save is true then the
// file is created with the current values. Otherwise a missing file results in
// an error with the NoPrefsFile pattern.
//
// Values in the file that cannot be converted are reported as an error after
// all other values have been loaded.
func (dsk *Disk) Load(save bool) error {
	dsk.crit.Lock()

	pairs, err := read(dsk.path)
	if err != nil {
		dsk.crit.Unlock()
		if save && curated.Is(err, NoPrefsFile) {
			return dsk.Save()
		}
		return err
	}

	var errs []error
	for _, p := range pairs {
		if e, ok := dsk.entries[p[0]]; ok {
			if err := e.Set(p[1]); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p[0], err))
			}
		}
	}

	dsk.crit.Unlock()

	return errors.Join(errs...)
}
