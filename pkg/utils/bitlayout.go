package utils

import (
	"errors"
	"fmt"
	"strings"
)

// Named run of contiguous bits of a word
type LayoutField struct {
	Name string
	// Least significant bit of the field
	Position int
	Width    int
}

func (f LayoutField) top() int {
	return f.Position + f.Width - 1
}

var ErrOverlappingFields = errors.New("layout fields overlap or are not sorted by position")

// Adds unused fields for the bits not covered by the given fields
func layoutCells(fields []LayoutField, bits int) ([]LayoutField, error) {
	cells := make([]LayoutField, 0, len(fields)+1)
	next := 0

	for _, field := range fields {
		if field.Position < next {
			return nil, MakeError(ErrOverlappingFields, "field '%v' starts at bit %v, bit %v is already used", field.Name, field.Position, next)
		}

		if field.Position > next {
			cells = append(cells, LayoutField{Name: "unused", Position: next, Width: field.Position - next})
		}

		cells = append(cells, field)
		next = field.Position + field.Width
	}

	if next < bits {
		cells = append(cells, LayoutField{Name: "unused", Position: next, Width: bits - next})
	}

	return cells, nil
}

func center(text string, width int) string {
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-left-len(text))
}

// Draws a word as a table of its fields, most significant bit first:
//
//	 7      4 3 0
//	+--------+---+
//	| unused | a |
//	+--------+---+
//
// Fields must be sorted by position
func BitLayout(fields []LayoutField, bits int, leftpad int) (string, error) {
	cells, err := layoutCells(fields, bits)
	if err != nil {
		return "", err
	}

	pad := strings.Repeat(" ", leftpad)
	var indices, border, body strings.Builder

	for i := len(cells) - 1; i >= 0; i-- {
		cell := cells[i]
		bottom := fmt.Sprint(cell.Position)
		width := 0

		if cell.Width == 1 {
			width = Max([]int{len(cell.Name) + 2, len(bottom)})
			indices.WriteString(fmt.Sprintf(" %-*v", width, bottom))
		} else {
			top := fmt.Sprint(cell.top())
			width = Max([]int{len(cell.Name) + 2, len(top) + 1 + len(bottom)})
			indices.WriteString(fmt.Sprintf(" %-*v%v", width-len(bottom), top, bottom))
		}

		border.WriteString("+" + strings.Repeat("-", width))
		body.WriteString("|" + center(cell.Name, width))
	}

	border.WriteString("+")
	body.WriteString("|")

	var result strings.Builder

	for _, row := range []string{strings.TrimRight(indices.String(), " "), border.String(), body.String(), border.String()} {
		result.WriteString(pad)
		result.WriteString(row)
		result.WriteString("\n")
	}

	return result.String(), nil
}
