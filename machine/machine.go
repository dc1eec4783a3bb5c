/*
 * psxcore - wires BIOS, interconnect and CPU together and drives the run loop
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

// Package machine wires bios, interconnect and cpu into the running
// emulated PSX and drives the fetch/execute loop: read a BIOS image,
// construct BIOS->Interconnect->CPU, then step the CPU forever.
package machine

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-psx/psxcore/bios"
	"github.com/go-psx/psxcore/cpu"
	"github.com/go-psx/psxcore/interconnect"
	"github.com/go-psx/psxcore/util/trace"
)

// Machine owns the three core components for the lifetime of the run:
// no component is destroyed or replaced once constructed.
type Machine struct {
	Interconnect *interconnect.Interconnect
	CPU          *cpu.CPU

	log   *slog.Logger
	trace *trace.Tracer
}

// New reads the BIOS image at path and constructs bios -> interconnect
// -> cpu. The BIOS must be exactly bios.Size bytes; any other size is
// rejected. When traceEnabled is set, every stepped instruction and
// every DMA channel run is logged at debug level.
func New(biosPath string, log *slog.Logger, traceEnabled bool) (*Machine, error) {
	if log == nil {
		log = slog.Default()
	}

	data, err := os.ReadFile(biosPath)
	if err != nil {
		return nil, fmt.Errorf("machine: reading BIOS image: %w", err)
	}

	image, err := bios.New(data)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	tr := trace.New(log, traceEnabled)

	ic := interconnect.New(image, log)
	ic.SetTracer(tr)
	c := cpu.New(ic, log)

	return &Machine{
		Interconnect: ic,
		CPU:          c,
		log:          log,
		trace:        tr,
	}, nil
}

// Run steps the CPU until ctx is cancelled or a fatal emulator error
// occurs. Emulated CPU exceptions (syscalls, overflow, address errors)
// are ordinary control transfers into the BIOS exception vector and
// never stop the loop; only a fatal error — an unrouted address, an
// unrecognized opcode, a malformed DMA request and the like — does.
func (m *Machine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		m.trace.Step(m.CPU.PC())

		if err := m.CPU.RunNextInstruction(); err != nil {
			m.log.Error("emulator error", "err", err)
			return err
		}
	}
}
