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
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// Pref is implemented by all types supported by the prefs system.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// live holds the value of a preference and the hook called when it changes
type live[T any] struct {
	value atomic.Value
	hook  func(value Value) error
}

func (l *live[T]) load(def T) T {
	v := l.value.Load()
	if v == nil {
		return def
	}
	return v.(T)
}

func (l *live[T]) store(v T) error {
	l.value.Store(v)
	if l.hook != nil {
		return l.hook(v)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	l live[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.l.load(false))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the value
// to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.l.store(v)
	case string:
		return p.l.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.l.load(false)
}

// Value returns the value as a bool.
func (p *Bool) Value() bool {
	return p.l.load(false)
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHook sets the function to be called after the value is updated. The
// function is called even if the value has not changed.
func (p *Bool) SetHook(f func(value Value) error) {
	p.l.hook = f
}

// Float implements a floating-point type in the prefs system. Values can be
// constrained to a range with SetRange().
type Float struct {
	l        live[float64]
	min, max float64
	bounded  bool
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.l.load(0), 'f', 3, 64)
}

// SetRange limits the value to the range min to max inclusive. The current
// value is clamped if necessary.
func (p *Float) SetRange(min float64, max float64) {
	p.min = min
	p.max = max
	p.bounded = true
	_ = p.Set(p.l.load(0))
}

// Set new value to Float type. New value can be a float64, float32, int or
// string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}

	if p.bounded {
		nv = min(max(nv, p.min), p.max)
	}

	return p.l.store(nv)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.l.load(0)
}

// Value returns the value as a float64.
func (p *Float) Value() float64 {
	return p.l.load(0)
}

// Reset sets the value to zero, or to the lower limit of the range.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// SetHook sets the function to be called after the value is updated. The
// function is called even if the value has not changed.
func (p *Float) SetHook(f func(value Value) error) {
	p.l.hook = f
}

// String implements a string type in the prefs system.
type String struct {
	l live[string]
}

func (p *String) String() string {
	return p.l.load("")
}

// Set new value to String type. Values of types other than string are
// formatted with the %v verb.
func (p *String) Set(v Value) error {
	return p.l.store(strings.TrimSpace(fmt.Sprintf("%v", v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.l.load("")
}

// Value returns the value as a string.
func (p *String) Value() string {
	return p.l.load("")
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHook sets the function to be called after the value is updated. The
// function is called even if the value has not changed.
func (p *String) SetHook(f func(value Value) error) {
	p.l.hook = f
}
