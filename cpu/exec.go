package cpu

func (cpu *CPU) unsupported(opcode uint8) error {
	return &UnsupportedInstructionError{Opcode: opcode, PC: cpu.pc - 1}
}

// execute runs the instruction whose opcode was just fetched and returns the
// clocks it took.
func (cpu *CPU) execute(opcode uint8) (uint, error) {
	opLow := opcode & 0x0f
	opHigh := opcode >> 4
	cycles := uint(opCycles[opcode])

	switch {
	case opcode == 0x00: // NOP

	case opcode == 0x10: // STOP
		cpu.fetch8()
		cpu.halted = true

	case opcode == 0x76: // HALT
		cpu.halted = true

	case opcode == 0xf3: // DI
		cpu.SetIME(false)

	case opcode == 0xfb: // EI
		if !cpu.ime && cpu.eiDelay == 0 {
			cpu.eiDelay = 2
		}

	case opcode == 0x07 || opcode == 0x0f || opcode == 0x17 || opcode == 0x1f: // RLCA, RRCA, RLA, RRA
		res, c := cpu.shift(opHigh*2+opLow/8, cpu.a)
		cpu.a = res
		cpu.SetFlagZNHC(false, false, false, c)

	case opcode == 0x27: // DAA
		cpu.daa()

	case opcode == 0x2f: // CPL
		cpu.a = compl(cpu.a)
		cpu.SetFlagN(true)
		cpu.SetFlagH(true)

	case opcode == 0x37: // SCF
		cpu.SetFlagZNHC(cpu.FlagZ(), false, false, true)

	case opcode == 0x3f: // CCF
		cpu.SetFlagZNHC(cpu.FlagZ(), false, false, !cpu.FlagC())

	case opcode == 0x08: // LD (a16), SP
		cpu.mem.Set16(cpu.fetch16(), cpu.sp)

	case opcode == 0x18 || // JR r8
		((opLow == 0 || opLow == 8) && (opHigh == 2 || opHigh == 3)): // JR (NZ|Z|NC|C), r8
		offset := int8(cpu.fetch8())
		if opcode == 0x18 || cpu.condition(opcode>>3) {
			if opcode != 0x18 {
				cycles += jrTakenCycles
			}
			cpu.IncPC(int(offset))
		}

	case opLow == 0x01 && opHigh <= 3: // LD (BC|DE|HL|SP), d16
		cpu.setReg16(opHigh, cpu.fetch16(), true)

	case opLow == 0x02 && opHigh <= 3: // LD ((BC)|(DE)|(HL+)|(HL-)), A
		cpu.mem.Set8(cpu.indirectAddr(opHigh), cpu.a)

	case opLow == 0x0a && opHigh <= 3: // LD A, ((BC)|(DE)|(HL+)|(HL-))
		cpu.a = cpu.mem.Get8(cpu.indirectAddr(opHigh))

	case opLow == 0x03 && opHigh <= 3: // INC (BC|DE|HL|SP)
		cpu.setReg16(opHigh, cpu.getReg16(opHigh, true)+1, true)

	case opLow == 0x0b && opHigh <= 3: // DEC (BC|DE|HL|SP)
		cpu.setReg16(opHigh, cpu.getReg16(opHigh, true)-1, true)

	case opLow == 0x09 && opHigh <= 3: // ADD HL, (BC|DE|HL|SP)
		cpu.addHL(cpu.getReg16(opHigh, true))

	case opLow%8 == 4 && opHigh <= 3: // INC (B|C|D|E|H|L|(HL)|A)
		reg := opHigh*2 + opLow/8
		src := cpu.getReg(reg)
		_, halfCarry := add4(src, 1, false)
		cpu.setReg(reg, src+1)
		cpu.SetFlagZNHC(src+1 == 0, false, halfCarry, cpu.FlagC())

	case opLow%8 == 5 && opHigh <= 3: // DEC (B|C|D|E|H|L|(HL)|A)
		reg := opHigh*2 + opLow/8
		src := cpu.getReg(reg)
		_, halfCarry := sub4(src, 1, false)
		cpu.setReg(reg, src-1)
		cpu.SetFlagZNHC(src-1 == 0, true, halfCarry, cpu.FlagC())

	case opLow%8 == 6 && opHigh <= 3: // LD (B|C|D|E|H|L|(HL)|A), d8
		cpu.setReg(opHigh*2+opLow/8, cpu.fetch8())

	case 0x40 <= opcode && opcode <= 0x7f: // LD reg1, reg2
		reg1 := (opcode & 0x3f) >> 3
		reg2 := opcode & 0x07
		cpu.setReg(reg1, cpu.getReg(reg2))

	case 0x80 <= opcode && opcode <= 0xbf: // (ADD|ADC|SUB|SBC|AND|XOR|OR|CP) reg
		cpu.alu((opcode>>3)&0x07, cpu.getReg(opcode&0x07))

	case opLow%8 == 6 && opHigh >= 0xc: // (ADD|ADC|SUB|SBC|AND|XOR|OR|CP) d8
		cpu.alu((opcode>>3)&0x07, cpu.fetch8())

	case opLow%8 == 0 && (opHigh == 0xc || opHigh == 0xd): // RET (NZ|Z|NC|C)
		if cpu.condition(opcode >> 3) {
			cpu.pc = cpu.pop16()
			cycles += retTakenCycles
		}

	case opcode == 0xc9: // RET
		cpu.pc = cpu.pop16()

	case opcode == 0xd9: // RETI
		cpu.pc = cpu.pop16()
		cpu.SetIME(true)

	case opLow%8 == 2 && (opHigh == 0xc || opHigh == 0xd): // JP (NZ|Z|NC|C), a16
		addr := cpu.fetch16()
		if cpu.condition(opcode >> 3) {
			cpu.pc = addr
			cycles += jpTakenCycles
		}

	case opcode == 0xc3: // JP a16
		cpu.pc = cpu.fetch16()

	case opcode == 0xe9: // JP HL
		cpu.pc = cpu.HL()

	case opLow%8 == 4 && (opHigh == 0xc || opHigh == 0xd): // CALL (NZ|Z|NC|C), a16
		addr := cpu.fetch16()
		if cpu.condition(opcode >> 3) {
			cpu.push16(cpu.pc)
			cpu.pc = addr
			cycles += callTakenCycles
		}

	case opcode == 0xcd: // CALL a16
		addr := cpu.fetch16()
		cpu.push16(cpu.pc)
		cpu.pc = addr

	case opLow%8 == 7 && opHigh >= 0xc: // RST (00H|08H|...|38H)
		cpu.push16(cpu.pc)
		cpu.pc = uint16(opcode - 0xc7)

	case opLow == 0x05 && opHigh >= 0xc: // PUSH (BC|DE|HL|AF)
		cpu.push16(cpu.getReg16(opHigh-0xc, false))

	case opLow == 0x01 && opHigh >= 0xc: // POP (BC|DE|HL|AF)
		cpu.setReg16(opHigh-0xc, cpu.pop16(), false)

	case opcode == 0xcb: // PREFIX CB
		cb := cpu.fetch8()
		cpu.executeCB(cb)
		cycles = cbCycles(cb)

	case opcode == 0xe0: // LDH (a8), A
		cpu.mem.Set8(0xff00+uint16(cpu.fetch8()), cpu.a)

	case opcode == 0xf0: // LDH A, (a8)
		cpu.a = cpu.mem.Get8(0xff00 + uint16(cpu.fetch8()))

	case opcode == 0xe2: // LD (C), A
		cpu.mem.Set8(0xff00+uint16(cpu.c), cpu.a)

	case opcode == 0xf2: // LD A, (C)
		cpu.a = cpu.mem.Get8(0xff00 + uint16(cpu.c))

	case opcode == 0xea: // LD (a16), A
		cpu.mem.Set8(cpu.fetch16(), cpu.a)

	case opcode == 0xfa: // LD A, (a16)
		cpu.a = cpu.mem.Get8(cpu.fetch16())

	case opcode == 0xe8: // ADD SP, r8
		cpu.sp = cpu.addSPOffset(cpu.fetch8())

	case opcode == 0xf8: // LD HL, SP+r8
		cpu.SetHL(cpu.addSPOffset(cpu.fetch8()))

	case opcode == 0xf9: // LD SP, HL
		cpu.sp = cpu.HL()

	default:
		return 0, cpu.unsupported(opcode)
	}

	return cycles, nil
}

// indirectAddr resolves (BC) (DE) (HL+) (HL-), applying the HL post-step.
func (cpu *CPU) indirectAddr(index uint8) uint16 {
	switch index {
	case 0:
		return cpu.BC()
	case 1:
		return cpu.DE()
	case 2:
		hl := cpu.HL()
		cpu.SetHL(hl + 1)
		return hl
	}
	hl := cpu.HL()
	cpu.SetHL(hl - 1)
	return hl
}
