/*
 * psxcore - GP0 drawing/DMA command dispatch
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

package gpu

import "fmt"

// gp0Entry names the word length and handler of one GP0 opcode.
type gp0Entry struct {
	length uint32
	method func(*GPU)
}

var gp0Table = map[uint32]gp0Entry{
	0x00: {1, (*GPU).gp0Nop},
	0x01: {1, (*GPU).gp0ClearCache},
	0x28: {5, (*GPU).gp0QuadMonoOpaque},
	0x2c: {9, (*GPU).gp0QuadTextureBlendOpaque},
	0x30: {6, (*GPU).gp0TriangleShadedOpaque},
	0x38: {8, (*GPU).gp0QuadShadedOpaque},
	0xa0: {3, (*GPU).gp0ImageLoad},
	0xc0: {3, (*GPU).gp0ImageStore},
	0xe1: {1, (*GPU).gp0DrawMode},
	0xe2: {1, (*GPU).gp0TextureWindow},
	0xe3: {1, (*GPU).gp0DrawingAreaTopLeft},
	0xe4: {1, (*GPU).gp0DrawingAreaBottomRight},
	0xe5: {1, (*GPU).gp0DrawingOffset},
	0xe6: {1, (*GPU).gp0MaskBitSetting},
}

// GP0 feeds a single word to the GP0 drawing/DMA port. When no command is
// in flight, the leading byte of value selects the command's word count
// and handler from gp0Table; the handler runs once the buffer is full.
func (g *GPU) GP0(value uint32) error {
	if g.gp0CommandRemaining == 0 {
		opcode := (value >> 24) & 0xff

		entry, ok := gp0Table[opcode]
		if !ok {
			return &UnhandledCommandError{Port: "GP0", Value: value}
		}

		g.gp0CommandRemaining = entry.length
		g.gp0CommandMethod = entry.method
		g.gp0Command.clear()
	}

	g.gp0CommandRemaining--

	switch g.gp0Mode {
	case modeCommand:
		g.gp0Command.push(value)
		if g.gp0CommandRemaining == 0 {
			g.gp0CommandMethod(g)
		}
	case modeImageLoad:
		if g.gp0CommandRemaining == 0 {
			g.gp0Mode = modeCommand
		}
	}

	return nil
}

// UnhandledCommandError reports a GP0/GP1 opcode with no registered
// handler. This is an emulator error: the real hardware defines a
// command set far larger than what the router currently models.
type UnhandledCommandError struct {
	Port  string
	Value uint32
}

func (e *UnhandledCommandError) Error() string {
	return fmt.Sprintf("gpu: unhandled %s command %#08x", e.Port, e.Value)
}

func (g *GPU) gp0Nop() {}

func (g *GPU) gp0ClearCache() {}

// gp0ImageStore records the CPU<-VRAM transfer's dimensions. There is no
// VRAM to read pixels from, so the transfer itself has no effect beyond
// having been accepted.
func (g *GPU) gp0ImageStore() {
	_ = g.gp0Command.word(2)
}

// gp0ImageLoad switches the GP0 port into image-load mode for the pixel
// words that follow.
func (g *GPU) gp0ImageLoad() {
	res := g.gp0Command.word(2)
	width := res & 0xffff
	height := res >> 16

	imageSize := width * height
	imageSize = (imageSize + 1) &^ 1

	g.gp0CommandRemaining = imageSize / 2
	g.gp0Mode = modeImageLoad
}

func (g *GPU) gp0QuadMonoOpaque() {}

func (g *GPU) gp0QuadTextureBlendOpaque() {}

func (g *GPU) gp0TriangleShadedOpaque() {}

func (g *GPU) gp0QuadShadedOpaque() {}

// gp0DrawMode handles GP0(0xE1): texture page, semi-transparency, texture
// depth and the dithering/draw-to-display/texture-disable/rectangle-flip
// bits.
func (g *GPU) gp0DrawMode() {
	value := g.gp0Command.word(0)

	g.pageBaseX = byte(value & 0xf)
	g.pageBaseY = byte((value >> 4) & 1)

	g.semiTransparency = byte((value >> 5) & 3)

	switch (value >> 7) & 3 {
	case 0:
		g.textureDepth = T4Bit
	case 1:
		g.textureDepth = T8Bit
	case 2:
		g.textureDepth = T15Bit
	}

	g.dithering = (value>>9)&1 != 0
	g.drawToDisplay = (value>>10)&1 != 0
	g.textureDisable = (value>>11)&1 != 0
	g.rectTextureXFlip = (value>>12)&1 != 0
	g.rectTextureYFlip = (value>>13)&1 != 0
}

// gp0TextureWindow handles GP0(0xE2).
func (g *GPU) gp0TextureWindow() {
	value := g.gp0Command.word(0)

	g.textureWindowXMask = byte(value & 0x1f)
	g.textureWindowYMask = byte((value >> 5) & 0x1f)
	g.textureWindowXOffset = byte((value >> 10) & 0x1f)
	g.textureWindowYOffset = byte((value >> 15) & 0x1f)
}

// gp0DrawingAreaTopLeft handles GP0(0xE3).
func (g *GPU) gp0DrawingAreaTopLeft() {
	value := g.gp0Command.word(0)

	g.drawingAreaLeft = uint16(value & 0x3ff)
	g.drawingAreaTop = uint16((value >> 10) & 0x3ff)
}

// gp0DrawingAreaBottomRight handles GP0(0xE4).
func (g *GPU) gp0DrawingAreaBottomRight() {
	value := g.gp0Command.word(0)

	g.drawingAreaRight = uint16(value & 0x3ff)
	g.drawingAreaBottom = uint16((value >> 10) & 0x3ff)
}

// gp0DrawingOffset handles GP0(0xE5). The two 11-bit fields are sign
// extended via a shift-left-then-arithmetic-shift-right pair.
func (g *GPU) gp0DrawingOffset() {
	value := g.gp0Command.word(0)

	x := uint16(value & 0x7ff)
	y := uint16((value >> 11) & 0x7ff)

	g.drawingXOffset = int16(x<<5) >> 5
	g.drawingYOffset = int16(y<<5) >> 5
}

// gp0MaskBitSetting handles GP0(0xE6).
func (g *GPU) gp0MaskBitSetting() {
	value := g.gp0Command.word(0)

	g.maskSetForce = value&1 != 0
	g.maskPreserve = value&2 != 0
}
