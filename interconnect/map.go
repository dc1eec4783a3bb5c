/*
 * psxcore - memory-mapped address decoder
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

package interconnect

// addrRange is a half-open [start, start+length) address window.
type addrRange struct {
	start  uint32
	length uint32
}

// contains reports whether addr falls in r, returning its offset from
// the start of the window.
func (r addrRange) contains(addr uint32) (uint32, bool) {
	if addr >= r.start && addr < r.start+r.length {
		return addr - r.start, true
	}
	return 0, false
}

// regionMask maps a CPU address's top 3 bits (KUSEG/KSEG0/KSEG1/KSEG2)
// to the mask that strips the segment's cache/translation bits, leaving
// the physical offset within the segment.
var regionMask = [8]uint32{
	// KUSEG: 2048MB
	0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	// KSEG0: 512MB
	0x7fffffff,
	// KSEG1: 512MB
	0x1fffffff,
	// KSEG2: 1024MB
	0xffffffff, 0xffffffff,
}

// maskRegion resolves a CPU virtual address down to its physical offset.
func maskRegion(addr uint32) uint32 {
	index := addr >> 29
	return addr & regionMask[index]
}

var (
	biosRange             = addrRange{0x1fc00000, 512 * 1024}
	ramRange              = addrRange{0x00000000, 2 * 1024 * 1024}
	memControlRange       = addrRange{0x1f801000, 36}
	ramSizeRange          = addrRange{0x1f801060, 4}
	cacheControlRange     = addrRange{0xfffe0130, 4}
	spuRange              = addrRange{0x1f801c00, 640}
	expansion1Range       = addrRange{0x1f000000, 512 * 1024}
	expansion2Range       = addrRange{0x1f802000, 66}
	interruptControlRange = addrRange{0x1f801070, 8}
	timersRange           = addrRange{0x1f801100, 48}
	dmaRange              = addrRange{0x1f801080, 128}
	gpuRange              = addrRange{0x1f801810, 8}
)
