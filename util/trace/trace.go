/*
 * psxcore - opt-in per-instruction and per-DMA-channel trace logging
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

// Package trace provides a tiny opt-in tracer over slog: one line per
// instruction stepped and one line per DMA channel run, both returning
// before any formatting when tracing isn't enabled so the hot
// fetch/execute loop never pays for a disabled Debug call's argument
// formatting.
package trace

import (
	"fmt"
	"log/slog"
)

// Tracer emits Debug-level lines through log when enabled. The nil
// Tracer is valid and traces nothing, so callers that never enable
// tracing can skip constructing one.
type Tracer struct {
	log     *slog.Logger
	enabled bool
}

// New returns a Tracer that logs through log only when enabled is true.
func New(log *slog.Logger, enabled bool) *Tracer {
	if log == nil {
		log = slog.Default()
	}
	return &Tracer{log: log, enabled: enabled}
}

// Enabled reports whether t will actually emit anything.
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

// Step logs the address of the instruction about to be fetched.
func (t *Tracer) Step(pc uint32) {
	if !t.Enabled() {
		return
	}
	t.log.Debug("step", "pc", fmt.Sprintf("%#08x", pc))
}

// DMA logs a channel's transfer parameters at the moment it starts
// running, before any words move.
func (t *Tracer) DMA(port string, mode string, base uint32, size uint32) {
	if !t.Enabled() {
		return
	}
	t.log.Debug("dma", "port", port, "mode", mode, "base", fmt.Sprintf("%#08x", base), "size", size)
}
