/*
 * psxcore - instruction decode/dispatch and the shift/ALU instruction
 * families
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

package cpu

import "github.com/go-psx/psxcore/instruction"

// execute decodes one instruction word and dispatches it to its
// handler. Opcode 0 dispatches further on the special sub-opcode,
// opcode 1 on the REGIMM condition, opcode 0x10 on the coprocessor-0
// sub-opcode in rs.
func (c *CPU) execute(inst instruction.Instruction) error {
	switch inst.Opcode() {
	case 0x00:
		return c.executeSpecial(inst)
	case 0x01:
		return c.executeRegimm(inst)
	case 0x02:
		return c.opJ(inst)
	case 0x03:
		return c.opJAL(inst)
	case 0x04:
		return c.opBEQ(inst)
	case 0x05:
		return c.opBNE(inst)
	case 0x06:
		return c.opBLEZ(inst)
	case 0x07:
		return c.opBGTZ(inst)
	case 0x08:
		return c.opADDI(inst)
	case 0x09:
		return c.opADDIU(inst)
	case 0x0a:
		return c.opSLTI(inst)
	case 0x0b:
		return c.opSLTIU(inst)
	case 0x0c:
		return c.opANDI(inst)
	case 0x0d:
		return c.opORI(inst)
	case 0x0f:
		return c.opLUI(inst)
	case 0x10:
		return c.executeCop0(inst)
	case 0x20:
		return c.opLB(inst)
	case 0x21:
		return c.opLH(inst)
	case 0x23:
		return c.opLW(inst)
	case 0x24:
		return c.opLBU(inst)
	case 0x25:
		return c.opLHU(inst)
	case 0x28:
		return c.opSB(inst)
	case 0x29:
		return c.opSH(inst)
	case 0x2b:
		return c.opSW(inst)
	default:
		return &FatalError{Op: "unhandled opcode", Addr: uint32(inst)}
	}
}

func (c *CPU) executeSpecial(inst instruction.Instruction) error {
	switch inst.Special() {
	case 0x00:
		return c.opSLL(inst)
	case 0x02:
		return c.opSRL(inst)
	case 0x03:
		return c.opSRA(inst)
	case 0x04:
		return c.opSLLV(inst)
	case 0x06:
		return c.opSRLV(inst)
	case 0x07:
		return c.opSRAV(inst)
	case 0x08:
		return c.opJR(inst)
	case 0x09:
		return c.opJALR(inst)
	case 0x0c:
		return c.opSYSCALL(inst)
	case 0x10:
		return c.opMFHI(inst)
	case 0x11:
		return c.opMTHI(inst)
	case 0x12:
		return c.opMFLO(inst)
	case 0x13:
		return c.opMTLO(inst)
	case 0x19:
		return c.opMULTU(inst)
	case 0x1a:
		return c.opDIV(inst)
	case 0x1b:
		return c.opDIVU(inst)
	case 0x20:
		return c.opADD(inst)
	case 0x21:
		return c.opADDU(inst)
	case 0x22:
		return c.opSUB(inst)
	case 0x23:
		return c.opSUBU(inst)
	case 0x24:
		return c.opAND(inst)
	case 0x25:
		return c.opOR(inst)
	case 0x27:
		return c.opNOR(inst)
	case 0x2a:
		return c.opSLT(inst)
	case 0x2b:
		return c.opSLTU(inst)
	default:
		return &FatalError{Op: "unhandled special instruction", Addr: uint32(inst)}
	}
}

func (c *CPU) executeRegimm(inst instruction.Instruction) error {
	switch inst.Regimm() {
	case 0x00:
		return c.opBLTZ(inst)
	case 0x01:
		return c.opBGEZ(inst)
	case 0x10:
		return c.opBLTZAL(inst)
	case 0x11:
		return c.opBGEZAL(inst)
	default:
		return &FatalError{Op: "unhandled REGIMM condition", Addr: uint32(inst)}
	}
}

func (c *CPU) opSLL(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RT())<<inst.SA())
	return nil
}

func (c *CPU) opSRL(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RT())>>inst.SA())
	return nil
}

func (c *CPU) opSRA(inst instruction.Instruction) error {
	c.setReg(inst.RD(), uint32(int32(c.reg(inst.RT()))>>inst.SA()))
	return nil
}

func (c *CPU) opSLLV(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RT())<<(c.reg(inst.RS())&0x1f))
	return nil
}

func (c *CPU) opSRLV(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RT())>>(c.reg(inst.RS())&0x1f))
	return nil
}

func (c *CPU) opSRAV(inst instruction.Instruction) error {
	c.setReg(inst.RD(), uint32(int32(c.reg(inst.RT()))>>(c.reg(inst.RS())&0x1f)))
	return nil
}

func (c *CPU) opADDI(inst instruction.Instruction) error {
	a := int32(c.reg(inst.RS()))
	b := int32(inst.ImmSE())
	sum := a + b
	if addOverflows(a, b, sum) {
		c.exception(Overflow)
		return nil
	}
	c.setReg(inst.RT(), uint32(sum))
	return nil
}

func (c *CPU) opADDIU(inst instruction.Instruction) error {
	c.setReg(inst.RT(), c.reg(inst.RS())+inst.ImmSE())
	return nil
}

func (c *CPU) opSLTI(inst instruction.Instruction) error {
	v := uint32(0)
	if int32(c.reg(inst.RS())) < int32(inst.ImmSE()) {
		v = 1
	}
	c.setReg(inst.RT(), v)
	return nil
}

func (c *CPU) opSLTIU(inst instruction.Instruction) error {
	v := uint32(0)
	if c.reg(inst.RS()) < inst.ImmSE() {
		v = 1
	}
	c.setReg(inst.RT(), v)
	return nil
}

func (c *CPU) opANDI(inst instruction.Instruction) error {
	c.setReg(inst.RT(), c.reg(inst.RS())&inst.Imm())
	return nil
}

func (c *CPU) opORI(inst instruction.Instruction) error {
	c.setReg(inst.RT(), c.reg(inst.RS())|inst.Imm())
	return nil
}

func (c *CPU) opLUI(inst instruction.Instruction) error {
	c.setReg(inst.RT(), inst.Imm()<<16)
	return nil
}

func (c *CPU) opADD(inst instruction.Instruction) error {
	a := int32(c.reg(inst.RS()))
	b := int32(c.reg(inst.RT()))
	sum := a + b
	if addOverflows(a, b, sum) {
		c.exception(Overflow)
		return nil
	}
	c.setReg(inst.RD(), uint32(sum))
	return nil
}

func (c *CPU) opADDU(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RS())+c.reg(inst.RT()))
	return nil
}

// opSUB implements SUB as SUBU: this instruction set carries SUB only
// as an alias, with no distinct overflow-checked form.
func (c *CPU) opSUB(inst instruction.Instruction) error {
	return c.opSUBU(inst)
}

func (c *CPU) opSUBU(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RS())-c.reg(inst.RT()))
	return nil
}

func (c *CPU) opAND(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RS())&c.reg(inst.RT()))
	return nil
}

func (c *CPU) opOR(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.reg(inst.RS())|c.reg(inst.RT()))
	return nil
}

func (c *CPU) opNOR(inst instruction.Instruction) error {
	c.setReg(inst.RD(), ^(c.reg(inst.RS()) | c.reg(inst.RT())))
	return nil
}

func (c *CPU) opSLT(inst instruction.Instruction) error {
	v := uint32(0)
	if int32(c.reg(inst.RS())) < int32(c.reg(inst.RT())) {
		v = 1
	}
	c.setReg(inst.RD(), v)
	return nil
}

func (c *CPU) opSLTU(inst instruction.Instruction) error {
	v := uint32(0)
	if c.reg(inst.RS()) < c.reg(inst.RT()) {
		v = 1
	}
	c.setReg(inst.RD(), v)
	return nil
}

func (c *CPU) opSYSCALL(_ instruction.Instruction) error {
	c.exception(SysCall)
	return nil
}

// addOverflows reports whether a + b, computed as 32-bit two's
// complement, overflowed: both operands share a sign and the result's
// sign differs from theirs.
func addOverflows(a, b, sum int32) bool {
	return (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0)
}
