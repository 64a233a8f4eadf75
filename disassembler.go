// disassembler.go - pure MIPS R3000A disassembly, formatted after the
// original reference's mnemonic/operand style

package main

import "fmt"

// signHex renders a signed 16-bit immediate as the reference disassembler
// does: an explicit sign followed by the absolute hex magnitude.
func signHex(imm uint32) string {
	v := int32(int16(imm))
	if v < 0 {
		return fmt.Sprintf("-0x%x", uint32(-v))
	}
	return fmt.Sprintf("0x%x", uint32(v))
}

func loadStoreOperand(offset uint32, base uint) string {
	return fmt.Sprintf("%s(%s)", signHex(offset), registerName(base))
}

// disassemble returns a deterministic, human-readable rendering of a single
// instruction word. Unrecognized encodings render as "UNKNOWN"; an all-zero
// word renders as "NOP" (SLL $zero, $zero, 0).
func disassemble(pc uint32, word uint32) string {
	if word == 0 {
		return "NOP"
	}

	i := instruction(word)
	rs := i.rs()
	rt := i.rt()

	switch i.opcode() {
	case opSpecial:
		return disassembleSpecial(i)
	case opBcond:
		return disassembleBcond(i, pc)
	case opJ:
		return fmt.Sprintf("J 0x%08x", (pc&0xf0000000)|(i.target()<<2))
	case opJAL:
		return fmt.Sprintf("JAL 0x%08x", (pc&0xf0000000)|(i.target()<<2))
	case opBEQ:
		return fmt.Sprintf("BEQ %s, %s, 0x%08x", registerName(rs), registerName(rt), branchTarget(pc, i))
	case opBNE:
		return fmt.Sprintf("BNE %s, %s, 0x%08x", registerName(rs), registerName(rt), branchTarget(pc, i))
	case opBLEZ:
		return fmt.Sprintf("BLEZ %s, 0x%08x", registerName(rs), branchTarget(pc, i))
	case opBGTZ:
		return fmt.Sprintf("BGTZ %s, 0x%08x", registerName(rs), branchTarget(pc, i))
	case opADDI:
		return fmt.Sprintf("ADDI %s, %s, %s", registerName(rt), registerName(rs), signHex(i.imm()))
	case opADDIU:
		return fmt.Sprintf("ADDIU %s, %s, %s", registerName(rt), registerName(rs), signHex(i.imm()))
	case opSLTI:
		return fmt.Sprintf("SLTI %s, %s, %s", registerName(rt), registerName(rs), signHex(i.imm()))
	case opSLTIU:
		return fmt.Sprintf("SLTIU %s, %s, %s", registerName(rt), registerName(rs), signHex(i.imm()))
	case opANDI:
		return fmt.Sprintf("ANDI %s, %s, 0x%04x", registerName(rt), registerName(rs), i.imm())
	case opORI:
		return fmt.Sprintf("ORI %s, %s, 0x%04x", registerName(rt), registerName(rs), i.imm())
	case opXORI:
		return fmt.Sprintf("XORI %s, %s, 0x%04x", registerName(rt), registerName(rs), i.imm())
	case opLUI:
		return fmt.Sprintf("LUI %s, 0x%04x", registerName(rt), i.imm())
	case opCOP0:
		return disassembleCop0(i)
	case opLB:
		return fmt.Sprintf("LB %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLH:
		return fmt.Sprintf("LH %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLWL:
		return fmt.Sprintf("LWL %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLW:
		return fmt.Sprintf("LW %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLBU:
		return fmt.Sprintf("LBU %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLHU:
		return fmt.Sprintf("LHU %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLWR:
		return fmt.Sprintf("LWR %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opSB:
		return fmt.Sprintf("SB %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opSH:
		return fmt.Sprintf("SH %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opSWL:
		return fmt.Sprintf("SWL %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opSW:
		return fmt.Sprintf("SW %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opSWR:
		return fmt.Sprintf("SWR %s, %s", registerName(rt), loadStoreOperand(i.imm(), rs))
	case opLWC2:
		return fmt.Sprintf("LWC2 $%d, %s", rt, loadStoreOperand(i.imm(), rs))
	case opSWC2:
		return fmt.Sprintf("SWC2 $%d, %s", rt, loadStoreOperand(i.imm(), rs))
	default:
		return "UNKNOWN"
	}
}

func branchTarget(pc uint32, i instruction) uint32 {
	return pc + 4 + (i.immSE() << 2)
}

func disassembleBcond(i instruction, pc uint32) string {
	rs := i.rs()
	target := branchTarget(pc, i)
	link := (i.rt() & 0x1e) == 0x10
	switch {
	case i.rt() == 0x00:
		return fmt.Sprintf("BLTZ %s, 0x%08x", registerName(rs), target)
	case i.rt() == 0x01:
		return fmt.Sprintf("BGEZ %s, 0x%08x", registerName(rs), target)
	case link && i.rt() == 0x10:
		return fmt.Sprintf("BLTZAL %s, 0x%08x", registerName(rs), target)
	case link && i.rt() == 0x11:
		return fmt.Sprintf("BGEZAL %s, 0x%08x", registerName(rs), target)
	default:
		return "UNKNOWN"
	}
}

func disassembleSpecial(i instruction) string {
	rs, rt, rd, sh := i.rs(), i.rt(), i.rd(), i.shift()
	switch i.fn() {
	case fnSLL:
		return fmt.Sprintf("SLL %s, %s, %d", registerName(rd), registerName(rt), sh)
	case fnSRL:
		return fmt.Sprintf("SRL %s, %s, %d", registerName(rd), registerName(rt), sh)
	case fnSRA:
		return fmt.Sprintf("SRA %s, %s, %d", registerName(rd), registerName(rt), sh)
	case fnSLLV:
		return fmt.Sprintf("SLLV %s, %s, %s", registerName(rd), registerName(rt), registerName(rs))
	case fnSRLV:
		return fmt.Sprintf("SRLV %s, %s, %s", registerName(rd), registerName(rt), registerName(rs))
	case fnSRAV:
		return fmt.Sprintf("SRAV %s, %s, %s", registerName(rd), registerName(rt), registerName(rs))
	case fnJR:
		return fmt.Sprintf("JR %s", registerName(rs))
	case fnJALR:
		return fmt.Sprintf("JALR %s, %s", registerName(rd), registerName(rs))
	case fnSYSCALL:
		return "SYSCALL"
	case fnBREAK:
		return "BREAK"
	case fnMFHI:
		return fmt.Sprintf("MFHI %s", registerName(rd))
	case fnMTHI:
		return fmt.Sprintf("MTHI %s", registerName(rs))
	case fnMFLO:
		return fmt.Sprintf("MFLO %s", registerName(rd))
	case fnMTLO:
		return fmt.Sprintf("MTLO %s", registerName(rs))
	case fnMULT:
		return fmt.Sprintf("MULT %s, %s", registerName(rs), registerName(rt))
	case fnMULTU:
		return fmt.Sprintf("MULTU %s, %s", registerName(rs), registerName(rt))
	case fnDIV:
		return fmt.Sprintf("DIV %s, %s", registerName(rs), registerName(rt))
	case fnDIVU:
		return fmt.Sprintf("DIVU %s, %s", registerName(rs), registerName(rt))
	case fnADD:
		return fmt.Sprintf("ADD %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnADDU:
		return fmt.Sprintf("ADDU %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnSUB:
		return fmt.Sprintf("SUB %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnSUBU:
		return fmt.Sprintf("SUBU %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnAND:
		return fmt.Sprintf("AND %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnOR:
		return fmt.Sprintf("OR %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnXOR:
		return fmt.Sprintf("XOR %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnNOR:
		return fmt.Sprintf("NOR %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnSLT:
		return fmt.Sprintf("SLT %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	case fnSLTU:
		return fmt.Sprintf("SLTU %s, %s, %s", registerName(rd), registerName(rs), registerName(rt))
	default:
		return "UNKNOWN"
	}
}

func disassembleCop0(i instruction) string {
	rt, rd := i.rt(), i.rd()
	switch i.rs() {
	case cop0MF:
		return fmt.Sprintf("MFC0 %s, %s", registerName(rt), cop0RegisterName(rd))
	case cop0MT:
		return fmt.Sprintf("MTC0 %s, %s", registerName(rt), cop0RegisterName(rd))
	case cop0RFE:
		if i.fn() == cop0RFEFunc {
			return "RFE"
		}
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}
