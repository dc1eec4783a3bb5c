/*
 * psxcore - tracer test cases
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

package trace

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferedTracer(enabled bool) (*Tracer, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(log, enabled), &buf
}

func TestDisabledTracerEmitsNothing(t *testing.T) {
	tr, buf := newBufferedTracer(false)
	tr.Step(0xbfc00000)
	tr.DMA("GPU", "block", 0, 4)
	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote %q, want nothing", buf.String())
	}
}

func TestNilTracerIsSilent(t *testing.T) {
	var tr *Tracer
	tr.Step(0)
	tr.DMA("OTC", "block", 0, 4)
}

func TestEnabledTracerLogsStep(t *testing.T) {
	tr, buf := newBufferedTracer(true)
	tr.Step(0xbfc00000)
	if got := buf.String(); !strings.Contains(got, "0xbfc00000") {
		t.Errorf("Step output %q, want it to mention the PC", got)
	}
}

func TestEnabledTracerLogsDMA(t *testing.T) {
	tr, buf := newBufferedTracer(true)
	tr.DMA("OTC", "block", 0x100, 4)
	got := buf.String()
	if !strings.Contains(got, "OTC") || !strings.Contains(got, "block") {
		t.Errorf("DMA output %q, want it to mention port and mode", got)
	}
}
