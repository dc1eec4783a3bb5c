package dma

import "testing"

func TestChannelControlRoundTrip(t *testing.T) {
	var c Channel

	// direction=FromRam, step=Decrement, sync=Request, enable, trigger
	word := uint32(1) | (1 << 1) | (1 << 9) | (1 << 24) | (1 << 28)
	if err := c.SetControl(word); err != nil {
		t.Fatalf("SetControl: %v", err)
	}

	if c.Direction() != FromRam {
		t.Errorf("Direction() = %v, want FromRam", c.Direction())
	}
	if c.DMAStep() != Decrement {
		t.Errorf("DMAStep() = %v, want Decrement", c.DMAStep())
	}
	if c.SyncMode() != Request {
		t.Errorf("SyncMode() = %v, want Request", c.SyncMode())
	}
	if !c.Active() {
		t.Errorf("Active() = false, want true")
	}
	if got := c.Control(); got != word {
		t.Errorf("Control() = %#08x, want %#08x", got, word)
	}
}

func TestChannelActiveManualRequiresTrigger(t *testing.T) {
	var c Channel
	_ = c.SetControl(1 << 24) // enable, Manual sync, no trigger
	if c.Active() {
		t.Errorf("Active() = true without trigger in Manual sync")
	}
	_ = c.SetControl((1 << 24) | (1 << 28))
	if !c.Active() {
		t.Errorf("Active() = false with enable+trigger in Manual sync")
	}
}

func TestChannelDoneClearsEnableAndTrigger(t *testing.T) {
	var c Channel
	_ = c.SetControl((1 << 24) | (1 << 28))
	c.Done()
	if c.Active() {
		t.Errorf("Active() = true after Done()")
	}
}

func TestChannelTransferSize(t *testing.T) {
	var c Channel
	c.SetBlockControl((3 << 16) | 8) // block count 3, block size 8

	_ = c.SetControl(0) // Manual
	if size, ok := c.TransferSize(); !ok || size != 8 {
		t.Errorf("Manual TransferSize() = (%d, %v), want (8, true)", size, ok)
	}

	_ = c.SetControl(1 << 9) // Request
	if size, ok := c.TransferSize(); !ok || size != 24 {
		t.Errorf("Request TransferSize() = (%d, %v), want (24, true)", size, ok)
	}

	_ = c.SetControl(2 << 9) // LinkedList
	if _, ok := c.TransferSize(); ok {
		t.Errorf("LinkedList TransferSize() reported ok, want unknown")
	}
}

func TestChannelBaseMasked(t *testing.T) {
	var c Channel
	c.SetBase(0xffffffff)
	if got := c.Base(); got != 0xffffff {
		t.Errorf("Base() = %#08x, want 0x00ffffff", got)
	}
}

func TestControllerResetValue(t *testing.T) {
	d := New()
	if got := d.Control(); got != 0x07654321 {
		t.Errorf("Control() = %#08x, want 0x07654321", got)
	}
}

func TestControllerInterruptAggregation(t *testing.T) {
	d := New()

	// enable IRQ master + channel 0, then set channel 0's flag directly.
	d.SetInterrupt((1 << 23) | (1 << 16))
	if d.Interrupt()>>31 != 0 {
		t.Errorf("aggregated IRQ set with no pending channel flags")
	}

	d.channelIRQFlags = 1
	if d.Interrupt()>>31&1 != 1 {
		t.Errorf("aggregated IRQ bit not set when flags&enable != 0")
	}

	// write-1-to-clear: writing bit 24 should clear channelIRQFlags bit 0.
	d.SetInterrupt((1 << 23) | (1 << 16) | (1 << 24))
	if d.channelIRQFlags != 0 {
		t.Errorf("channelIRQFlags = %#x, want 0 after ack", d.channelIRQFlags)
	}
}

func TestControllerForceIRQOverridesMask(t *testing.T) {
	d := New()
	d.SetInterrupt(1 << 15) // force_irq, no master enable
	if d.Interrupt()>>31&1 != 1 {
		t.Errorf("force_irq did not set the aggregated IRQ bit")
	}
}

func TestPortFromIndex(t *testing.T) {
	p, err := PortFromIndex(2)
	if err != nil || p != GPU {
		t.Errorf("PortFromIndex(2) = (%v, %v), want (GPU, nil)", p, err)
	}
	if _, err := PortFromIndex(7); err == nil {
		t.Errorf("PortFromIndex(7) should be an error")
	}
}
