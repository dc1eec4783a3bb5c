/*
 * psxcore - BIOS image: immutable 512KiB ROM
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

// Package bios models the PSX's 512KiB boot ROM: an immutable, byte
// addressable image loaded once at startup.
package bios

import "fmt"

// Size is the exact length a BIOS image must have.
const Size = 512 * 1024

// BIOS is a read-only 512KiB byte array, little-endian.
type BIOS struct {
	data [Size]byte
}

// New copies data into a new BIOS image. data must be exactly Size bytes.
func New(data []byte) (*BIOS, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("bios: invalid image size %d, want %d", len(data), Size)
	}

	b := &BIOS{}
	copy(b.data[:], data)
	return b, nil
}

// LoadByte returns the byte at offset.
func (b *BIOS) LoadByte(offset uint32) uint8 {
	return b.data[offset]
}

// LoadHalf returns the little-endian halfword at offset.
func (b *BIOS) LoadHalf(offset uint32) uint16 {
	b0 := uint16(b.data[offset])
	b1 := uint16(b.data[offset+1])
	return b0 | (b1 << 8)
}

// LoadWord returns the little-endian word at offset.
func (b *BIOS) LoadWord(offset uint32) uint32 {
	b0 := uint32(b.data[offset])
	b1 := uint32(b.data[offset+1])
	b2 := uint32(b.data[offset+2])
	b3 := uint32(b.data[offset+3])
	return b0 | (b1 << 8) | (b2 << 16) | (b3 << 24)
}
