/*
 * psxcore - bus interconnect: the sole owner of BIOS, RAM, the DMA
 * controller and the GPU, and the address decoder that routes every CPU
 * load/store between them
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

// Package interconnect is the single top-level owner of the machine's
// address space: the BIOS ROM, main RAM, the DMA controller and the
// GPU all live behind it, and every CPU memory access is routed here
// first. Code outside this package reaches those four only through the
// Interconnect's own methods, including the GPU() and DMA() accessors.
package interconnect

import (
	"fmt"
	"log/slog"

	"github.com/go-psx/psxcore/bios"
	"github.com/go-psx/psxcore/device"
	"github.com/go-psx/psxcore/dma"
	"github.com/go-psx/psxcore/gpu"
	"github.com/go-psx/psxcore/ram"
	"github.com/go-psx/psxcore/util/trace"
)

// FatalError reports an address-decode failure the interconnect cannot
// recover from: an unaligned access, an address with no region, or a
// malformed MEM_CONTROL configuration write. It is an emulator error,
// not an emulated CPU exception.
type FatalError struct {
	Op   string
	Addr uint32
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("interconnect: %s address %#08x", e.Op, e.Addr)
}

// Interconnect owns the machine's address space and routes every load
// and store the CPU issues.
type Interconnect struct {
	bios *bios.BIOS
	ram  *ram.RAM
	dma  *dma.Controller
	gpu  *gpu.GPU

	spu              device.Peripheral
	timers           device.Peripheral
	interruptControl device.Peripheral

	log   *slog.Logger
	trace *trace.Tracer
}

// SetTracer installs t as the DMA tracer; a nil t (the default) traces
// nothing.
func (ic *Interconnect) SetTracer(t *trace.Tracer) {
	ic.trace = t
}

// New returns an Interconnect wired to a freshly-reset RAM, DMA
// controller and GPU behind the given BIOS image.
func New(bios *bios.BIOS, log *slog.Logger) *Interconnect {
	if log == nil {
		log = slog.Default()
	}
	return &Interconnect{
		bios: bios,
		ram:  ram.New(),
		dma:  dma.New(),
		gpu:  gpu.New(),

		spu:              device.NewStub("SPU", 0),
		timers:           device.NewStub("TIMERS", 0),
		interruptControl: device.NewStub("INTERRUPT_CONTROL", 0),

		log: log,
	}
}

// GPU returns the interconnect's GPU, for callers that need direct
// access to its state.
func (ic *Interconnect) GPU() *gpu.GPU { return ic.gpu }

// DMA returns the interconnect's DMA controller.
func (ic *Interconnect) DMA() *dma.Controller { return ic.dma }

// Load8 reads a single byte.
func (ic *Interconnect) Load8(addr uint32) (uint8, error) {
	masked := maskRegion(addr)

	if offset, ok := biosRange.contains(masked); ok {
		return ic.bios.LoadByte(offset), nil
	}
	if offset, ok := ramRange.contains(masked); ok {
		return ic.ram.LoadByte(offset), nil
	}
	if offset, ok := expansion1Range.contains(masked); ok {
		ic.log.Debug("unimplemented EXPANSION_1 register read", "offset", offset)
		return 0xff, nil
	}

	return 0, &FatalError{Op: "unhandled 8-bit load", Addr: addr}
}

// Store8 writes a single byte.
func (ic *Interconnect) Store8(addr uint32, value uint8) error {
	masked := maskRegion(addr)

	if offset, ok := expansion2Range.contains(masked); ok {
		ic.log.Debug("unimplemented EXPANSION_2 register write", "offset", offset)
		return nil
	}
	if offset, ok := ramRange.contains(masked); ok {
		ic.ram.StoreByte(offset, value)
		return nil
	}

	return &FatalError{Op: "unhandled 8-bit store", Addr: addr}
}

// Load16 reads a halfword. addr must be 2-byte aligned.
func (ic *Interconnect) Load16(addr uint32) (uint16, error) {
	if addr%2 != 0 {
		return 0, &FatalError{Op: "misaligned 16-bit load", Addr: addr}
	}

	masked := maskRegion(addr)

	if offset, ok := ramRange.contains(masked); ok {
		return ic.ram.LoadHalf(offset), nil
	}
	if offset, ok := spuRange.contains(masked); ok {
		ic.log.Debug("unimplemented SPU register read", "offset", offset)
		return 0, nil
	}
	if offset, ok := interruptControlRange.contains(masked); ok {
		return uint16(ic.interruptControl.LoadWord(offset)), nil
	}

	return 0, &FatalError{Op: "unhandled 16-bit load", Addr: addr}
}

// Store16 writes a halfword. addr must be 2-byte aligned.
func (ic *Interconnect) Store16(addr uint32, value uint16) error {
	if addr%2 != 0 {
		return &FatalError{Op: "misaligned 16-bit store", Addr: addr}
	}

	masked := maskRegion(addr)

	if offset, ok := spuRange.contains(masked); ok {
		ic.log.Debug("unimplemented SPU register write", "offset", offset)
		return nil
	}
	if offset, ok := ramRange.contains(masked); ok {
		ic.ram.StoreHalf(offset, value)
		return nil
	}
	if offset, ok := timersRange.contains(masked); ok {
		ic.timers.StoreWord(offset, uint32(value))
		return nil
	}
	if offset, ok := interruptControlRange.contains(masked); ok {
		ic.interruptControl.StoreWord(offset, uint32(value))
		return nil
	}

	return &FatalError{Op: "unhandled 16-bit store", Addr: addr}
}

// Load32 reads a word. addr must be 4-byte aligned.
func (ic *Interconnect) Load32(addr uint32) (uint32, error) {
	if addr%4 != 0 {
		return 0, &FatalError{Op: "misaligned 32-bit load", Addr: addr}
	}

	masked := maskRegion(addr)

	if offset, ok := biosRange.contains(masked); ok {
		return ic.bios.LoadWord(offset), nil
	}
	if offset, ok := ramRange.contains(masked); ok {
		return ic.ram.LoadWord(offset), nil
	}
	if offset, ok := interruptControlRange.contains(masked); ok {
		return ic.interruptControl.LoadWord(offset), nil
	}
	if offset, ok := dmaRange.contains(masked); ok {
		return ic.dmaReg(offset)
	}
	if offset, ok := timersRange.contains(masked); ok {
		return ic.timers.LoadWord(offset), nil
	}
	if offset, ok := gpuRange.contains(masked); ok {
		switch offset {
		case 4:
			// The BIOS boot sequence polls this word waiting for the
			// GPU to report ready-for-DMA; real firmware never reads
			// back the dynamic GPUSTAT bits here, so this stays the
			// fixed value rather than ic.gpu.Status().
			return 0x1c000000, nil
		default:
			return ic.gpu.Read(), nil
		}
	}

	return 0, &FatalError{Op: "unhandled 32-bit load", Addr: addr}
}

// Store32 writes a word. addr must be 4-byte aligned.
func (ic *Interconnect) Store32(addr uint32, value uint32) error {
	if addr%4 != 0 {
		return &FatalError{Op: "misaligned 32-bit store", Addr: addr}
	}

	masked := maskRegion(addr)

	if offset, ok := memControlRange.contains(masked); ok {
		switch offset {
		case 0:
			if value != 0x1f000000 {
				return &FatalError{Op: "bad EXPANSION_1 base in MEM_CONTROL", Addr: value}
			}
		case 4:
			if value != 0x1f802000 {
				return &FatalError{Op: "bad EXPANSION_2 base in MEM_CONTROL", Addr: value}
			}
		default:
			ic.log.Debug("unimplemented MEM_CONTROL register write", "offset", offset)
		}
		return nil
	}
	if offset, ok := ramRange.contains(masked); ok {
		ic.ram.StoreWord(offset, value)
		return nil
	}
	if offset, ok := ramSizeRange.contains(masked); ok {
		ic.log.Debug("unimplemented RAM_SIZE register write", "offset", offset)
		return nil
	}
	if offset, ok := cacheControlRange.contains(masked); ok {
		ic.log.Debug("unimplemented CACHE_CONTROL register write", "offset", offset)
		return nil
	}
	if offset, ok := interruptControlRange.contains(masked); ok {
		ic.interruptControl.StoreWord(offset, value)
		return nil
	}
	if offset, ok := timersRange.contains(masked); ok {
		ic.timers.StoreWord(offset, value)
		return nil
	}
	if offset, ok := dmaRange.contains(masked); ok {
		return ic.setDMAReg(offset, value)
	}
	if offset, ok := gpuRange.contains(masked); ok {
		switch offset {
		case 0:
			return ic.gpu.GP0(value)
		case 4:
			return ic.gpu.GP1(value)
		default:
			return &FatalError{Op: "unhandled GPU register write", Addr: addr}
		}
	}

	return &FatalError{Op: "unhandled 32-bit store", Addr: addr}
}

func (ic *Interconnect) dmaReg(offset uint32) (uint32, error) {
	major := (offset & 0x70) >> 4
	minor := offset & 0xf

	if major <= uint32(dma.OTC) {
		port, err := dma.PortFromIndex(major)
		if err != nil {
			return 0, err
		}
		channel := ic.dma.Channel(port)

		switch minor {
		case 0:
			return channel.Base(), nil
		case 4:
			return channel.BlockControl(), nil
		case 8:
			return channel.Control(), nil
		default:
			return 0, &FatalError{Op: "unhandled DMA register read", Addr: offset}
		}
	}

	if major == 7 {
		switch minor {
		case 0:
			return ic.dma.Control(), nil
		case 4:
			return ic.dma.Interrupt(), nil
		default:
			return 0, &FatalError{Op: "unhandled DMA register read", Addr: offset}
		}
	}

	return 0, &FatalError{Op: "unhandled DMA register read", Addr: offset}
}

func (ic *Interconnect) setDMAReg(offset uint32, value uint32) error {
	major := (offset & 0x70) >> 4
	minor := offset & 0xf

	if major <= uint32(dma.OTC) {
		port, err := dma.PortFromIndex(major)
		if err != nil {
			return err
		}
		channel := ic.dma.Channel(port)

		switch minor {
		case 0:
			channel.SetBase(value)
		case 4:
			channel.SetBlockControl(value)
		case 8:
			if err := channel.SetControl(value); err != nil {
				return err
			}
		default:
			return &FatalError{Op: "unhandled DMA register write", Addr: offset}
		}

		if channel.Active() {
			return ic.runDMA(port)
		}
		return nil
	}

	if major == 7 {
		switch minor {
		case 0:
			ic.dma.SetControl(value)
		case 4:
			ic.dma.SetInterrupt(value)
		default:
			return &FatalError{Op: "unhandled DMA register write", Addr: offset}
		}
		return nil
	}

	return &FatalError{Op: "unhandled DMA register write", Addr: offset}
}

// runDMA dispatches an active channel to the block or linked-list
// transfer engine.
func (ic *Interconnect) runDMA(port dma.Port) error {
	channel := ic.dma.Channel(port)

	if ic.trace.Enabled() {
		mode := "block"
		if channel.SyncMode() == dma.LinkedList {
			mode = "linked-list"
		}
		size, _ := channel.TransferSize()
		ic.trace.DMA(port.String(), mode, channel.Base(), size)
	}

	if channel.SyncMode() == dma.LinkedList {
		return ic.runDMALinkedList(port)
	}
	return ic.runDMABlock(port)
}

// runDMALinkedList walks the GPU's OT-style linked list of command
// packets in RAM, feeding each packet's words to GP0.
func (ic *Interconnect) runDMALinkedList(port dma.Port) error {
	channel := ic.dma.Channel(port)

	if channel.Direction() == dma.ToRam {
		return &FatalError{Op: "invalid DMA direction for linked list", Addr: channel.Base()}
	}
	if port != dma.GPU {
		return &FatalError{Op: "linked list DMA on non-GPU port", Addr: uint32(port)}
	}

	addr := channel.Base() & 0x1ffffc

	for {
		header := ic.ram.LoadWord(addr)
		remaining := header >> 24

		for remaining > 0 {
			addr = (addr + 4) & 0x1ffffc
			command := ic.ram.LoadWord(addr)
			if err := ic.gpu.GP0(command); err != nil {
				return err
			}
			remaining--
		}

		if header&0x800000 != 0 {
			break
		}
		addr = header & 0x1ffffc
	}

	channel.Done()
	return nil
}

// runDMABlock transfers a channel's fixed-size block between RAM and
// its target port.
func (ic *Interconnect) runDMABlock(port dma.Port) error {
	channel := ic.dma.Channel(port)

	var increment int32 = 4
	if channel.DMAStep() == dma.Decrement {
		increment = -4
	}

	addr := channel.Base()

	remaining, ok := channel.TransferSize()
	if !ok {
		return &FatalError{Op: "DMA block transfer has no fixed size", Addr: addr}
	}

	for remaining > 0 {
		currentAddr := addr & 0x1ffffc

		switch channel.Direction() {
		case dma.FromRam:
			sourceWord := ic.ram.LoadWord(currentAddr)
			switch port {
			case dma.GPU:
				if err := ic.gpu.GP0(sourceWord); err != nil {
					return err
				}
			default:
				return &FatalError{Op: "unhandled DMA destination port", Addr: uint32(port)}
			}
		case dma.ToRam:
			var sourceWord uint32
			switch port {
			case dma.OTC:
				switch remaining {
				case 1:
					sourceWord = 0xffffff
				default:
					sourceWord = (addr - 4) & 0x1fffff
				}
			default:
				return &FatalError{Op: "unhandled DMA source port", Addr: uint32(port)}
			}
			ic.ram.StoreWord(currentAddr, sourceWord)
		}

		addr = uint32(int64(addr) + int64(increment))
		remaining--
	}

	channel.Done()
	return nil
}
