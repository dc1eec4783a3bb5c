/*
 * psxcore - load and store instruction family
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

func (c *CPU) opLB(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	v, err := c.bus.Load8(addr)
	if err != nil {
		return err
	}
	c.load = loadSlot{reg: inst.RT(), value: uint32(int32(int8(v)))}
	return nil
}

func (c *CPU) opLBU(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	v, err := c.bus.Load8(addr)
	if err != nil {
		return err
	}
	c.load = loadSlot{reg: inst.RT(), value: uint32(v)}
	return nil
}

func (c *CPU) opLH(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	if addr%2 != 0 {
		c.exception(LoadAddressError)
		return nil
	}
	v, err := c.bus.Load16(addr)
	if err != nil {
		return err
	}
	c.load = loadSlot{reg: inst.RT(), value: uint32(int32(int16(v)))}
	return nil
}

func (c *CPU) opLHU(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	if addr%2 != 0 {
		c.exception(LoadAddressError)
		return nil
	}
	v, err := c.bus.Load16(addr)
	if err != nil {
		return err
	}
	c.load = loadSlot{reg: inst.RT(), value: uint32(v)}
	return nil
}

func (c *CPU) opLW(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	if addr%4 != 0 {
		c.exception(LoadAddressError)
		return nil
	}
	v, err := c.bus.Load32(addr)
	if err != nil {
		return err
	}
	c.load = loadSlot{reg: inst.RT(), value: v}
	return nil
}

func (c *CPU) opSB(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	return c.bus.Store8(addr, uint8(c.reg(inst.RT())))
}

func (c *CPU) opSH(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	if addr%2 != 0 {
		c.exception(StoreAddressError)
		return nil
	}
	return c.bus.Store16(addr, uint16(c.reg(inst.RT())))
}

func (c *CPU) opSW(inst instruction.Instruction) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := c.reg(inst.RS()) + inst.ImmSE()
	if addr%4 != 0 {
		c.exception(StoreAddressError)
		return nil
	}
	return c.bus.Store32(addr, c.reg(inst.RT()))
}
