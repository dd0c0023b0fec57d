package cpu

// executeCB runs a CB-prefixed instruction. Bits 7-6 pick the group,
// bits 5-3 the operation or bit number and bits 2-0 the operand.
func (cpu *CPU) executeCB(op uint8) {
	reg := op & 0x07
	n := (op >> 3) & 0x07
	val := cpu.getReg(reg)

	switch op >> 6 {
	case 0: // RLC RRC RL RR SLA SRA SWAP SRL
		res, c := cpu.shift(n, val)
		cpu.setReg(reg, res)
		cpu.SetFlagZNHC(res == 0, false, false, c)
	case 1: // BIT
		cpu.SetFlagZNHC(!bitN8(val, n), false, true, cpu.FlagC())
	case 2: // RES
		cpu.setReg(reg, val&^(1<<n))
	case 3: // SET
		cpu.setReg(reg, val|(1<<n))
	}
}
