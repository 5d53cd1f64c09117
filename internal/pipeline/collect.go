package pipeline

import (
	"unicode"
	"unicode/utf8"
)

// Block is a non-empty run of lines sharing one classification.
// The first line is the head; the rest were absorbed by Collect.
type Block []ClassifiedLine

// Head returns the first line of the block.
func (b Block) Head() ClassifiedLine {
	return b[0]
}

// Paragraph is a run of blocks with no blank line between them.
type Paragraph []Block

// Document is the structured form of one vocabulary text.
type Document []Paragraph

// collectsContinuation reports whether a heading class absorbs following lines.
func collectsContinuation(c Classification) bool {
	return c == StepHeading || c == NumberedHeadingNoColon
}

// Collect builds the block starting at lines[start] and returns it with the
// index of the first line it did not absorb. Only StepHeading and
// NumberedHeadingNoColon heads absorb continuation lines; every other line
// forms a block on its own. start must point at a non-blank line.
//
// Scanning stops at the first blank line, list marker, or line that starts
// with neither whitespace nor a lowercase letter, so the cost over a whole
// document stays linear.
func Collect(lines []ClassifiedLine, start int) (Block, int) {
	head := lines[start]
	block := Block{head}
	if !collectsContinuation(head.Class) {
		return block, start + 1
	}

	next := start + 1
	for next < len(lines) && isContinuation(lines[next]) {
		cont := ClassifiedLine{
			Line:         lines[next].Line,
			Class:        head.Class,
			Rest:         lines[next].trimmedText(),
			Continuation: true,
		}
		// Extra phrases stay bold inside an absorbed line
		if lines[next].Class == ExtraPhraseMatch {
			cont.Marked = lines[next].Marked
		}
		block = append(block, cont)
		next++
	}
	return block, next
}

// isContinuation reports whether l continues the block above it.
func isContinuation(l ClassifiedLine) bool {
	if l.Class == BlankLine || isListMarker(l.Text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.Text)
	return r == ' ' || r == '\t' || unicode.IsLower(r)
}

// Group partitions classified lines into paragraphs. Every blank line closes
// the paragraph being built; a trailing paragraph is flushed at the end.
func Group(lines []ClassifiedLine) Document {
	var doc Document
	var current Paragraph

	for i := 0; i < len(lines); {
		if lines[i].Class == BlankLine {
			if len(current) > 0 {
				doc = append(doc, current)
				current = nil
			}
			i++
			continue
		}

		block, next := Collect(lines, i)
		current = append(current, block)
		i = next
	}

	if len(current) > 0 {
		doc = append(doc, current)
	}
	return doc
}
