package mc_test

import (
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
)

var _ = Describe("Decoder", func() {
	var decoder *mc.Decoder

	BeforeEach(func() {
		var err error
		decoder, err = mc.NewDecoder(mc.DefaultConfig(), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should decode a wide load", func() {
		instruction, size, err := decoder.Decode([]byte{0x32, 0x21, 0x1F}, 0)

		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(3))
		Expect(instruction.Descriptor.OpCode.OpCode).To(Equal(instructions.OpCode_L32I))
		Expect(instruction.String()).To(Equal("l32i a3, a1, 124"))
	})

	It("should decode a narrow instruction without reading past it", func() {
		instruction, size, err := decoder.Decode([]byte{0x0D, 0xF0, 0xFF, 0xFF}, 0)

		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(2))
		Expect(instruction.String()).To(Equal("ret.n"))
	})

	It("should report truncated input with size zero", func() {
		instruction, size, err := decoder.Decode([]byte{0x32}, 0)

		Expect(instruction).To(BeNil())
		Expect(size).To(Equal(0))
		Expect(errors.Is(err, types.ErrTruncatedInput)).To(BeTrue())
		Expect(types.IsFatal(err)).To(BeFalse())
	})

	It("should report reserved words as recoverable", func() {
		_, size, err := decoder.Decode([]byte{0x0F, 0x00, 0x00}, 0)

		Expect(size).To(Equal(3))
		Expect(types.IsDecodeFailure(err)).To(BeTrue())
	})

	Context("with a symbol table", func() {
		BeforeEach(func() {
			decoder = decoder.WithSymbolizer(&mc.SymbolTable{
				Symbols: map[uint64]string{0x1104: "printf", 0x1000: "func"},
				Nearest: true,
			})
		})

		It("should name call targets", func() {
			instruction, _, err := decoder.Decode([]byte{0x25, 0x10, 0x00}, 0x1002)

			Expect(err).NotTo(HaveOccurred())
			Expect(instruction.String()).To(Equal("call8 printf"))
		})

		It("should name branch targets relative to the nearest symbol", func() {
			instruction, _, err := decoder.Decode([]byte{0x16, 0x02, 0x01}, 0x1000)

			Expect(err).NotTo(HaveOccurred())
			Expect(instruction.String()).To(Equal("beqz a2, func+20"))
		})
	})

	Context("with a mocked opcode table", func() {
		var (
			mockCtrl *gomock.Controller
			table    *mc.MockOpcodeTable
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			table = mc.NewMockOpcodeTable(mockCtrl)

			var err error
			decoder, err = mc.NewDecoder(mc.DefaultConfig(), table)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should fall back to the wide table", func() {
			add, err := instructions.Instructions.Instruction(instructions.OpCode_ADD)
			Expect(err).NotTo(HaveOccurred())

			gomock.InOrder(
				table.EXPECT().Match(uint64(0x2340), 2).Return(instructions.OpCode(0), nil, types.ErrNoMatch),
				table.EXPECT().Match(uint64(0x802340), 3).Return(instructions.OpCode_ADD, []uint64{2, 3, 4}, nil),
				table.EXPECT().Instruction(instructions.OpCode_ADD).Return(add, nil),
			)

			instruction, size, err := decoder.Decode([]byte{0x40, 0x23, 0x80}, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(size).To(Equal(3))
			Expect(instruction.String()).To(Equal("add a2, a3, a4"))
		})
	})
})

var _ = Describe("Encoder", func() {
	var encoder *mc.Encoder

	BeforeEach(func() {
		var err error
		encoder, err = mc.NewEncoder(mc.DefaultConfig(), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should encode little endian words", func() {
		instruction, err := instructions.ParseInstruction("add a2, a3, a4")
		Expect(err).NotTo(HaveOccurred())

		bytes, fixups, err := encoder.Encode(instruction)

		Expect(err).NotTo(HaveOccurred())
		Expect(bytes).To(Equal([]byte{0x40, 0x23, 0x80}))
		Expect(fixups).To(BeEmpty())
	})

	It("should leave symbolic operands to fixups", func() {
		instruction, err := instructions.ParseInstruction("j loop")
		Expect(err).NotTo(HaveOccurred())

		bytes, fixups, err := encoder.Encode(instruction)

		Expect(err).NotTo(HaveOccurred())
		Expect(bytes).To(Equal([]byte{0x06, 0x00, 0x00}))
		Expect(fixups).To(HaveLen(1))
		Expect(fixups[0].Kind).To(Equal(mc.FixupKind_Jump18))
		Expect(fixups[0].Expr.Symbol).To(Equal("loop"))
		Expect(fixups[0].Offset).To(BeZero())
	})

	It("should reject out of range immediates as fatal", func() {
		instruction, err := instructions.ParseInstruction("addi a2, a3, 200")
		Expect(err).NotTo(HaveOccurred())

		_, _, err = encoder.Encode(instruction)

		Expect(errors.Is(err, types.ErrOutOfRange)).To(BeTrue())
		Expect(types.IsFatal(err)).To(BeTrue())
	})
})

var _ = Describe("Round trip", func() {
	It("should disassemble what the assembler produced", func() {
		source := []string{
			"entry a1, 32",
			"l32i a2, a1, 8",
			"beqz a2, 16",
			"mov.n a2, a10",
			"add a2, a3, a4",
			"call8 256",
			"retw.n",
		}

		encoder, err := mc.NewEncoder(mc.DefaultConfig(), nil)
		Expect(err).NotTo(HaveOccurred())
		decoder, err := mc.NewDecoder(mc.DefaultConfig(), nil)
		Expect(err).NotTo(HaveOccurred())

		section, err := mc.NewAssembler(encoder).Assemble("roundtrip.s", source)
		Expect(err).NotTo(HaveOccurred())
		Expect(section.Fixups).To(BeEmpty())

		lines, err := decoder.Disassemble(section.Bytes, 0x4000)
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(HaveLen(len(source)))

		for i, line := range lines {
			Expect(line.Err).NotTo(HaveOccurred())
			Expect(line.Instruction.String()).To(Equal(source[i]))
		}
	})
})
