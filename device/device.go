/*
 * psxcore - Interface stubbed peripherals present behind the interconnect
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package device names the interface unimplemented PSX peripherals present
// to the interconnect. Only the interface is specified here; SPU, the
// CD-ROM controller, the timers, the interrupt controller and the
// pad/memory-card controllers have no modeled internals, only the
// register-window contract the interconnect relies on.
package device

// Peripheral is the minimal register-window contract a stubbed
// memory-mapped device exposes to the interconnect. Real hardware
// exposes far more; only what the interconnect's bus-routing layer
// needs to remain well-defined is named here.
type Peripheral interface {
	// Name identifies the peripheral for logging.
	Name() string

	// LoadWord returns the value at the given offset within the
	// device's register window. Unimplemented peripherals return a
	// documented default (usually 0).
	LoadWord(offset uint32) uint32

	// StoreWord writes value at the given offset. Unimplemented
	// peripherals discard the write.
	StoreWord(offset uint32, value uint32)
}

// Stub is a Peripheral that discards every write and returns a fixed
// default value for every read. It models SPU, the timers, and the
// interrupt controller: regions spec'd only to the extent of "reads
// return a default, writes are dropped".
type Stub struct {
	name    string
	Default uint32
}

// NewStub returns a Peripheral whose reads all return def.
func NewStub(name string, def uint32) *Stub {
	return &Stub{name: name, Default: def}
}

func (s *Stub) Name() string { return s.name }

func (s *Stub) LoadWord(_ uint32) uint32 { return s.Default }

func (s *Stub) StoreWord(_ uint32, _ uint32) {}
