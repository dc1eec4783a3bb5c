/*
 * psxcore - stub peripheral test cases
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

package device

import "testing"

func TestStubReadsReturnDefault(t *testing.T) {
	s := NewStub("SPU", 0xffffffff)
	if got := s.LoadWord(0); got != 0xffffffff {
		t.Errorf("LoadWord(0) = %#x, want 0xffffffff", got)
	}
	if got := s.LoadWord(0x1c); got != 0xffffffff {
		t.Errorf("LoadWord(0x1c) = %#x, want 0xffffffff (every offset shares the default)", got)
	}
}

func TestStubWritesAreDiscarded(t *testing.T) {
	s := NewStub("TIMERS", 0)
	s.StoreWord(4, 0x12345678)
	if got := s.LoadWord(4); got != 0 {
		t.Errorf("LoadWord(4) after a write = %#x, want unchanged default 0", got)
	}
}

func TestStubName(t *testing.T) {
	s := NewStub("INTERRUPT_CONTROL", 0)
	if got := s.Name(); got != "INTERRUPT_CONTROL" {
		t.Errorf("Name() = %q, want %q", got, "INTERRUPT_CONTROL")
	}
}
