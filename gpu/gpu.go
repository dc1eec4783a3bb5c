/*
 * psxcore - GPU command router: GP0 FIFO, GP1 control port, status register
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

// Package gpu models the PSX GPU's command parser and register bank: the
// GP0 drawing/DMA FIFO (multi-word commands dispatched once fully
// collected) and the GP1 control port, plus the status and
// display/drawing-area state they program.
//
// Actual rasterization is out of scope; each GP0 drawing command's
// handler records the command's effect on GPU state where the command
// carries state (draw mode, texture window, drawing area/offset, mask
// bits) and is a no-op otherwise (the quad/triangle draw commands have
// no rendering target to draw into).
package gpu

import "fmt"

// TextureDepth is the GP0 draw-mode texture color depth.
type TextureDepth uint8

const (
	T4Bit TextureDepth = iota
	T8Bit
	T15Bit
)

// Field is the currently displayed interlace field.
type Field uint8

const (
	Bottom Field = iota
	Top
)

// DMADirection is the GP1 DMA-direction selection.
type DMADirection uint8

const (
	Off DMADirection = iota
	FIFO
	CPUToGP0
	VRAMToCPU
)

// DisplayDepth is the display output color depth.
type DisplayDepth uint8

const (
	D15Bits DisplayDepth = iota
	D24Bits
)

// VMode is the video timing standard.
type VMode uint8

const (
	NTSC VMode = iota
	PAL
)

// VerticalRes is the display's vertical resolution.
type VerticalRes uint8

const (
	Y240Lines VerticalRes = iota
	Y480Lines
)

// HorizontalRes packs the two horizontal-resolution selector fields into
// the composite value the status register stores.
type HorizontalRes uint8

// HorizontalResFromFields packs GP1(0x08)'s hr1 (bits 0-1) and hr2 (bit 6).
func HorizontalResFromFields(hr1, hr2 uint8) HorizontalRes {
	return HorizontalRes((hr2 & 1) | ((hr1 & 3) << 1))
}

func (h HorizontalRes) statusBits() uint32 {
	return uint32(h) << 16
}

// gp0Mode selects how incoming GP0 words are interpreted.
type gp0Mode uint8

const (
	modeCommand gp0Mode = iota
	modeImageLoad
)

// commandBuffer holds the words of an in-flight multi-word GP0 command.
type commandBuffer struct {
	words  [12]uint32
	length uint8
}

func (b *commandBuffer) clear() {
	b.length = 0
}

func (b *commandBuffer) push(value uint32) {
	b.words[b.length] = value
	b.length++
}

func (b *commandBuffer) word(index uint8) uint32 {
	if index >= b.length {
		panic(fmt.Sprintf("gpu: command buffer index %d out of range (length %d)", index, b.length))
	}
	return b.words[index]
}

// GPU is the GP0/GP1 command router and register bank.
type GPU struct {
	pageBaseX byte
	pageBaseY byte

	semiTransparency byte

	textureDepth TextureDepth

	dithering      bool
	drawToDisplay  bool
	maskSetForce   bool
	maskPreserve   bool
	field          Field
	textureDisable bool

	hres HorizontalRes
	vres VerticalRes

	vmode VMode

	displayDepth DisplayDepth

	interlaced      bool
	displayDisable  bool
	interrupt       bool
	dmaDirection    DMADirection
	rectTextureXFlip bool
	rectTextureYFlip bool

	textureWindowXMask   byte
	textureWindowYMask   byte
	textureWindowXOffset byte
	textureWindowYOffset byte

	drawingAreaLeft   uint16
	drawingAreaTop    uint16
	drawingAreaRight  uint16
	drawingAreaBottom uint16

	drawingXOffset int16
	drawingYOffset int16

	displayVRAMXStart uint16
	displayVRAMYStart uint16

	displayHorizontalStart uint16
	displayHorizontalEnd   uint16

	displayLineStart uint16
	displayLineEnd   uint16

	gp0Command          commandBuffer
	gp0CommandRemaining uint32
	gp0CommandMethod    func(*GPU)
	gp0Mode             gp0Mode
}

// New returns a GPU in its power-on state.
func New() *GPU {
	g := &GPU{}
	g.reset()
	return g
}

func (g *GPU) reset() {
	g.pageBaseX = 0
	g.pageBaseY = 0
	g.semiTransparency = 0
	g.textureDepth = T4Bit
	g.dithering = false
	g.drawToDisplay = false
	g.maskSetForce = false
	g.maskPreserve = false
	g.field = Top
	g.textureDisable = false
	g.hres = HorizontalResFromFields(0, 0)
	g.vres = Y240Lines
	g.vmode = NTSC
	g.displayDepth = D15Bits
	g.interlaced = false
	g.displayDisable = true
	g.interrupt = false
	g.dmaDirection = Off
	g.rectTextureXFlip = false
	g.rectTextureYFlip = false
	g.textureWindowXMask = 0
	g.textureWindowYMask = 0
	g.textureWindowXOffset = 0
	g.textureWindowYOffset = 0
	g.drawingAreaLeft = 0
	g.drawingAreaTop = 0
	g.drawingAreaRight = 0
	g.drawingAreaBottom = 0
	g.drawingXOffset = 0
	g.drawingYOffset = 0
	g.displayVRAMXStart = 0
	g.displayVRAMYStart = 0
	g.displayHorizontalStart = 0
	g.displayHorizontalEnd = 0
	g.displayLineStart = 0
	g.displayLineEnd = 0
}

// Status returns the packed GPUSTAT register.
func (g *GPU) Status() uint32 {
	var r uint32

	r |= uint32(g.pageBaseX) << 0
	r |= uint32(g.pageBaseY) << 4
	r |= uint32(g.semiTransparency) << 5
	r |= uint32(g.textureDepth) << 7
	r |= b2u(g.dithering) << 9
	r |= b2u(g.drawToDisplay) << 10
	r |= b2u(g.maskSetForce) << 11
	r |= b2u(g.maskPreserve) << 12
	r |= uint32(g.field) << 13
	r |= b2u(g.textureDisable) << 15
	r |= g.hres.statusBits()
	r |= uint32(g.vres) << 19
	r |= uint32(g.vmode) << 20
	r |= uint32(g.displayDepth) << 21
	r |= b2u(g.interlaced) << 22
	r |= b2u(g.displayDisable) << 23
	r |= b2u(g.interrupt) << 24

	r |= 1 << 26
	r |= 1 << 27
	r |= 1 << 28

	r |= uint32(g.dmaDirection) << 29

	var dmaRequest uint32
	switch g.dmaDirection {
	case Off:
		dmaRequest = 0
	case FIFO:
		dmaRequest = 1
	case CPUToGP0:
		dmaRequest = (r >> 28) & 1
	case VRAMToCPU:
		dmaRequest = (r >> 27) & 1
	}
	r |= dmaRequest << 25

	return r
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
