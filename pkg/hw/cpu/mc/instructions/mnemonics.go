package instructions

var Opcodes OpCodesDescriptor = NewOpCodesDescriptor(
	map[OpCode]string{
		OpCode_ADD:     "add",
		OpCode_SUB:     "sub",
		OpCode_AND:     "and",
		OpCode_OR:      "or",
		OpCode_XOR:     "xor",
		OpCode_NEG:     "neg",
		OpCode_ABS:     "abs",
		OpCode_ADDI:    "addi",
		OpCode_ADDMI:   "addmi",
		OpCode_MOVI:    "movi",
		OpCode_L8UI:    "l8ui",
		OpCode_L16UI:   "l16ui",
		OpCode_L16SI:   "l16si",
		OpCode_L32I:    "l32i",
		OpCode_S8I:     "s8i",
		OpCode_S16I:    "s16i",
		OpCode_S32I:    "s32i",
		OpCode_S32C1I:  "s32c1i",
		OpCode_L32R:    "l32r",
		OpCode_CALL0:   "call0",
		OpCode_CALL4:   "call4",
		OpCode_CALL8:   "call8",
		OpCode_CALL12:  "call12",
		OpCode_CALLX0:  "callx0",
		OpCode_CALLX4:  "callx4",
		OpCode_CALLX8:  "callx8",
		OpCode_CALLX12: "callx12",
		OpCode_J:       "j",
		OpCode_JX:      "jx",
		OpCode_RET:     "ret",
		OpCode_RETW:    "retw",
		OpCode_ENTRY:   "entry",
		OpCode_BEQZ:    "beqz",
		OpCode_BNEZ:    "bnez",
		OpCode_BLTZ:    "bltz",
		OpCode_BGEZ:    "bgez",
		OpCode_BEQI:    "beqi",
		OpCode_BNEI:    "bnei",
		OpCode_BLTI:    "blti",
		OpCode_BGEI:    "bgei",
		OpCode_BLTUI:   "bltui",
		OpCode_BGEUI:   "bgeui",
		OpCode_BNONE:   "bnone",
		OpCode_BEQ:     "beq",
		OpCode_BLT:     "blt",
		OpCode_BLTU:    "bltu",
		OpCode_BALL:    "ball",
		OpCode_BBC:     "bbc",
		OpCode_BBCI:    "bbci",
		OpCode_BANY:    "bany",
		OpCode_BNE:     "bne",
		OpCode_BGE:     "bge",
		OpCode_BGEU:    "bgeu",
		OpCode_BNALL:   "bnall",
		OpCode_BBS:     "bbs",
		OpCode_BBSI:    "bbsi",
		OpCode_BF:      "bf",
		OpCode_BT:      "bt",
		OpCode_SLLI:    "slli",
		OpCode_SRAI:    "srai",
		OpCode_SRLI:    "srli",
		OpCode_SRC:     "src",
		OpCode_SRL:     "srl",
		OpCode_SLL:     "sll",
		OpCode_SRA:     "sra",
		OpCode_EXTUI:   "extui",
		OpCode_SSR:     "ssr",
		OpCode_SSL:     "ssl",
		OpCode_SSA8L:   "ssa8l",
		OpCode_SSA8B:   "ssa8b",
		OpCode_SSAI:    "ssai",
		OpCode_NSA:     "nsa",
		OpCode_NSAU:    "nsau",
		OpCode_MULL:    "mull",
		OpCode_MULUH:   "muluh",
		OpCode_MULSH:   "mulsh",
		OpCode_QUOU:    "quou",
		OpCode_QUOS:    "quos",
		OpCode_REMU:    "remu",
		OpCode_REMS:    "rems",
		OpCode_SEXT:    "sext",
		OpCode_CLAMPS:  "clamps",
		OpCode_RSR:     "rsr",
		OpCode_WSR:     "wsr",
		OpCode_XSR:     "xsr",
		OpCode_RUR:     "rur",
		OpCode_WUR:     "wur",
		OpCode_L32E:    "l32e",
		OpCode_S32E:    "s32e",
		OpCode_MOVSP:   "movsp",
		OpCode_ROTW:    "rotw",
		OpCode_ADD_S:   "add.s",
		OpCode_SUB_S:   "sub.s",
		OpCode_MUL_S:   "mul.s",
		OpCode_LSI:     "lsi",
		OpCode_SSI:     "ssi",
		OpCode_ANDB:    "andb",
		OpCode_ORB:     "orb",
		OpCode_XORB:    "xorb",
		OpCode_BREAK:   "break",
		OpCode_NOP:     "nop",
		OpCode_MEMW:    "memw",
		OpCode_ISYNC:   "isync",
		OpCode_RSYNC:   "rsync",
		OpCode_ESYNC:   "esync",
		OpCode_DSYNC:   "dsync",
		OpCode_EXTW:    "extw",
		OpCode_ILL:     "ill",
		OpCode_L32I_N:  "l32i.n",
		OpCode_S32I_N:  "s32i.n",
		OpCode_ADD_N:   "add.n",
		OpCode_ADDI_N:  "addi.n",
		OpCode_MOVI_N:  "movi.n",
		OpCode_MOV_N:   "mov.n",
		OpCode_RET_N:   "ret.n",
		OpCode_RETW_N:  "retw.n",
		OpCode_BREAK_N: "break.n",
		OpCode_NOP_N:   "nop.n",
		OpCode_ILL_N:   "ill.n",
	},
)
