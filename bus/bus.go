package bus

// Memory is the address space the CPU executes against. The MMU implements
// it and owns the interrupt-enable and interrupt-flag registers.
type Memory interface {
	Get8(addr uint16) uint8
	Set8(addr uint16, val uint8)
	Get16(addr uint16) uint16
	Set16(addr uint16, val uint16)

	IE() uint8
	IF() uint8
	SetIF(val uint8)

	// Tick advances every device on the bus by the elapsed clocks.
	Tick(cycles uint)
}
