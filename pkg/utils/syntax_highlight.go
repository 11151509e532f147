// Package utils provides utility functions for the xtensa project.
package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Assembly syntax highlighting colors
var (
	// Instruction mnemonics and directives
	AsmMnemonicColor = color.New(color.FgMagenta, color.Bold)
	// Register operands
	AsmRegisterColor = color.New(color.FgCyan)
	// Immediate operands
	AsmNumberColor = color.New(color.FgYellow)
	// Symbolic operands and labels
	AsmSymbolColor = color.New(color.FgGreen)
	// Comments
	AsmCommentColor = color.New(color.FgHiBlack)
)

// Patterns for syntax elements
var (
	// Matches # and ; comments
	asmCommentPattern = regexp.MustCompile(`[#;].*$`)
	// Matches an optional label followed by the mnemonic
	asmMnemonicPattern = regexp.MustCompile(`^\s*(?:([A-Za-z_$][\w.$]*):\s*)?([.a-z][a-z0-9._]*)`)
	// Matches hex and decimal numbers, optionally negative
	asmNumberPattern = regexp.MustCompile(`-?\b(?:0[xX][0-9a-fA-F]+|[0-9]+)\b`)
	// Matches identifiers, with an optional @variant suffix
	asmIdentifierPattern = regexp.MustCompile(`[A-Za-z_.$][\w.$]*(?:@\w+)?`)
)

// token represents a syntax-highlighted token
type token struct {
	text  string
	color *color.Color
	start int
	end   int
}

// HighlightAssembly applies syntax highlighting to a line of assembly and
// returns the colored string. Identifiers isRegister accepts are colored as
// registers, the rest as symbols
func HighlightAssembly(code string, isRegister func(name string) bool) string {
	if code == "" {
		return ""
	}

	var tokens []token

	add := func(start, end int, c *color.Color) {
		if !overlapsAny(start, end, tokens) {
			tokens = append(tokens, token{
				text:  code[start:end],
				color: c,
				start: start,
				end:   end,
			})
		}
	}

	// Comments first, nothing inside them is highlighted
	for _, match := range asmCommentPattern.FindAllStringIndex(code, -1) {
		add(match[0], match[1], AsmCommentColor)
	}

	if match := asmMnemonicPattern.FindStringSubmatchIndex(code); match != nil {
		if match[2] >= 0 {
			add(match[2], match[3], AsmSymbolColor)
		}

		add(match[4], match[5], AsmMnemonicColor)
	}

	for _, match := range asmNumberPattern.FindAllStringIndex(code, -1) {
		add(match[0], match[1], AsmNumberColor)
	}

	for _, match := range asmIdentifierPattern.FindAllStringIndex(code, -1) {
		if isRegister != nil && isRegister(code[match[0]:match[1]]) {
			add(match[0], match[1], AsmRegisterColor)
		} else {
			add(match[0], match[1], AsmSymbolColor)
		}
	}

	return buildHighlightedString(code, tokens)
}

// overlapsAny checks if a range overlaps with any existing token
func overlapsAny(start, end int, tokens []token) bool {
	for _, t := range tokens {
		if start < t.end && end > t.start {
			return true
		}
	}
	return false
}

// buildHighlightedString constructs the final string with color codes
func buildHighlightedString(code string, tokens []token) string {
	if len(tokens) == 0 {
		return code
	}

	sort.Slice(tokens, func(i, j int) bool { return tokens[i].start < tokens[j].start })

	var result strings.Builder
	pos := 0

	for _, t := range tokens {
		// Add unhighlighted text before this token
		if t.start > pos {
			result.WriteString(code[pos:t.start])
		}
		// Add highlighted token
		result.WriteString(t.color.Sprint(t.text))
		pos = t.end
	}

	// Add remaining unhighlighted text
	if pos < len(code) {
		result.WriteString(code[pos:])
	}

	return result.String()
}
