/*
 * psxcore - MIPS R3000A instruction word decoding
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

// Package instruction wraps a 32-bit MIPS R3000A instruction word and
// exposes its bit-field accessors.
package instruction

// Instruction is a raw 32-bit MIPS machine word.
type Instruction uint32

// Opcode returns bits [31:26].
func (i Instruction) Opcode() uint32 {
	return uint32(i) >> 26
}

// Special returns bits [5:0], the SPECIAL sub-opcode when Opcode() == 0.
func (i Instruction) Special() uint32 {
	return uint32(i) & 0x3f
}

// Regimm returns bits [20:16], the REGIMM condition when Opcode() == 1.
func (i Instruction) Regimm() uint32 {
	return i.RT()
}

// Cop0Op returns bits [25:21] (rs), the coprocessor-0 sub-opcode when
// Opcode() == 0x10.
func (i Instruction) Cop0Op() uint32 {
	return i.RS()
}

// RS returns bits [25:21].
func (i Instruction) RS() uint32 {
	return (uint32(i) >> 21) & 0x1f
}

// RT returns bits [20:16].
func (i Instruction) RT() uint32 {
	return (uint32(i) >> 16) & 0x1f
}

// RD returns bits [15:11].
func (i Instruction) RD() uint32 {
	return (uint32(i) >> 11) & 0x1f
}

// SA returns bits [10:6], the shift amount.
func (i Instruction) SA() uint32 {
	return (uint32(i) >> 6) & 0x1f
}

// Imm returns the zero-extended 16-bit immediate, bits [15:0].
func (i Instruction) Imm() uint32 {
	return uint32(i) & 0xffff
}

// ImmSE returns the sign-extended 16-bit immediate, bits [15:0].
func (i Instruction) ImmSE() uint32 {
	return uint32(int32(int16(uint16(i))))
}

// Target returns bits [25:0], the jump target field.
func (i Instruction) Target() uint32 {
	return uint32(i) & 0x3ffffff
}
