/*
 * psxcore - RAM: mutable 2MiB working memory
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

// Package ram models the PSX's 2MiB main memory.
package ram

// Size is the exact length of working RAM.
const Size = 2 * 1024 * 1024

// RAM is zero-initialized working memory. The zero value is ready to use.
type RAM struct {
	data [Size]byte
}

// New returns a zero-initialized RAM. Equivalent to new(RAM); provided
// so callers can construct it the same way as BIOS and the other
// interconnect-owned components.
func New() *RAM {
	return &RAM{}
}

// LoadByte returns the byte at offset.
func (r *RAM) LoadByte(offset uint32) uint8 {
	return r.data[offset]
}

// LoadHalf returns the little-endian halfword at offset.
func (r *RAM) LoadHalf(offset uint32) uint16 {
	b0 := uint16(r.data[offset])
	b1 := uint16(r.data[offset+1])
	return b0 | (b1 << 8)
}

// LoadWord returns the little-endian word at offset.
func (r *RAM) LoadWord(offset uint32) uint32 {
	b0 := uint32(r.data[offset])
	b1 := uint32(r.data[offset+1])
	b2 := uint32(r.data[offset+2])
	b3 := uint32(r.data[offset+3])
	return b0 | (b1 << 8) | (b2 << 16) | (b3 << 24)
}

// StoreByte writes a byte at offset.
func (r *RAM) StoreByte(offset uint32, value uint8) {
	r.data[offset] = value
}

// StoreHalf writes a little-endian halfword at offset.
func (r *RAM) StoreHalf(offset uint32, value uint16) {
	r.data[offset] = uint8(value)
	r.data[offset+1] = uint8(value >> 8)
}

// StoreWord writes a little-endian word at offset.
func (r *RAM) StoreWord(offset uint32, value uint32) {
	r.data[offset] = uint8(value)
	r.data[offset+1] = uint8(value >> 8)
	r.data[offset+2] = uint8(value >> 16)
	r.data[offset+3] = uint8(value >> 24)
}
