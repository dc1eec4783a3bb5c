/*
 * psxcore - GP1 display-control port dispatch
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

// GP1 feeds a single word to the GP1 display-control port.
func (g *GPU) GP1(value uint32) error {
	opcode := (value >> 24) & 0xff

	switch opcode {
	case 0x00:
		g.gp1Reset()
	case 0x01:
		g.gp1ResetCommandBuffer()
	case 0x02:
		g.gp1AcknowledgeIRQ()
	case 0x03:
		g.gp1DisplayEnable(value)
	case 0x04:
		g.gp1DMADirection(value)
	case 0x05:
		g.gp1DisplayVRAMStart(value)
	case 0x06:
		g.gp1DisplayHorizontalRange(value)
	case 0x07:
		g.gp1DisplayVerticalRange(value)
	case 0x08:
		return g.gp1DisplayMode(value)
	default:
		return &UnhandledCommandError{Port: "GP1", Value: value}
	}

	return nil
}

// Read returns the GPUREAD register. Only status polling is modeled; the
// VRAM-to-CPU DMA path this register would otherwise serve has no VRAM
// behind it.
func (g *GPU) Read() uint32 {
	return 0
}

func (g *GPU) gp1Reset() {
	g.reset()
}

func (g *GPU) gp1ResetCommandBuffer() {
	g.gp0Command.clear()
	g.gp0CommandRemaining = 0
	g.gp0Mode = modeCommand
}

func (g *GPU) gp1AcknowledgeIRQ() {
	g.interrupt = false
}

func (g *GPU) gp1DisplayEnable(value uint32) {
	g.displayDisable = value&1 != 0
}

// gp1DMADirection handles GP1(0x04). The field is already masked to two
// bits, so every value is valid.
func (g *GPU) gp1DMADirection(value uint32) {
	switch value & 3 {
	case 0:
		g.dmaDirection = Off
	case 1:
		g.dmaDirection = FIFO
	case 2:
		g.dmaDirection = CPUToGP0
	case 3:
		g.dmaDirection = VRAMToCPU
	}
}

// gp1DisplayVRAMStart handles GP1(0x05). The x field masks to a 10-bit
// range but only even values are meaningful; this uses 0x3FF rather
// than the narrower 0x3FE some references use.
func (g *GPU) gp1DisplayVRAMStart(value uint32) {
	g.displayVRAMXStart = uint16(value & 0x3ff)
	g.displayVRAMYStart = uint16((value >> 10) & 0x1ff)
}

func (g *GPU) gp1DisplayHorizontalRange(value uint32) {
	g.displayHorizontalStart = uint16(value & 0xfff)
	g.displayHorizontalEnd = uint16((value >> 12) & 0xfff)
}

func (g *GPU) gp1DisplayVerticalRange(value uint32) {
	g.displayLineStart = uint16(value & 0x3ff)
	g.displayLineEnd = uint16((value >> 10) & 0x3ff)
}

// gp1DisplayMode handles GP1(0x08): horizontal/vertical resolution,
// video timing standard, display color depth, interlacing.
func (g *GPU) gp1DisplayMode(value uint32) error {
	hr1 := uint8(value & 3)
	hr2 := uint8((value >> 6) & 1)

	g.hres = HorizontalResFromFields(hr1, hr2)

	if value&0x4 != 0 {
		g.vres = Y480Lines
	} else {
		g.vres = Y240Lines
	}

	if value&0x8 != 0 {
		g.vmode = PAL
	} else {
		g.vmode = NTSC
	}

	if value&0x10 != 0 {
		g.displayDepth = D15Bits
	} else {
		g.displayDepth = D24Bits
	}

	g.interlaced = value&0x20 != 0

	if value&0x80 != 0 {
		return &UnsupportedDisplayModeError{Value: value}
	}

	return nil
}

// UnsupportedDisplayModeError reports GP1(0x08)'s reserved bit 7 set,
// selecting a display mode the hardware never exposed.
type UnsupportedDisplayModeError struct {
	Value uint32
}

func (e *UnsupportedDisplayModeError) Error() string {
	return "gpu: unsupported display mode"
}
