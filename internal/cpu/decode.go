package cpu

// instructionSet and cbSet are the two opcode dispatch tables: a 256-entry
// primary table and a 256-entry table for the byte following the 0xCB
// prefix. Each entry is a handler that mutates the
// CPU and accounts its own cycles via the fetch/readByte/writeByte/tick
// helpers in cpu.go; Step reads the accumulated total back out once the
// handler returns.
//
// Rather than 256+256 hand-written define/defineCB calls, the regular
// opcode families (8-bit loads between registers, the ALU-A-r block, the
// INC/DEC/rotate/shift groups and the whole CB table) are generated by
// looping over the encoding the LR35902 actually uses -- register index in
// bits 2:0 (or 5:3), register-pair index in bits 5:4, condition index in
// bits 4:3. Irregular opcodes (immediates, jumps, calls, stack ops, control)
// are defined individually in their own files. Both paths write into the
// same instructionSet/cbSet arrays, so dispatch itself is a single array
// index in Step.
var instructionSet [256]func(*CPU)
var cbSet [256]func(*CPU)

// define installs fn as the handler for the given primary opcode. Panics on
// a double-definition: that would mean two opcode families overlapped,
// which is a bug in this file, not in the ROM being executed.
func define(opcode uint8, fn func(*CPU)) {
	if instructionSet[opcode] != nil {
		panic("cpu: opcode already defined")
	}
	instructionSet[opcode] = fn
}

func defineCB(opcode uint8, fn func(*CPU)) {
	if cbSet[opcode] != nil {
		panic("cpu: cb opcode already defined")
	}
	cbSet[opcode] = fn
}
