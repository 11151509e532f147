package types

import "fmt"

// Points to the assembly source an instruction was produced from
type SourceLocation struct {
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Column int    `yaml:"column,omitempty"`
}

func (l SourceLocation) String() string {
	if l.File == "" && l.Line == 0 {
		return "<unknown>"
	}

	return fmt.Sprintf("%v:%v:%v", l.File, l.Line, l.Column)
}
