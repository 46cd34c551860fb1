package save

import (
	"strconv"
	"strings"
)

// Parser reads a save file one line at a time. Every read advances the
// cursor by one line; after a failed read the parser must not be used again.
type Parser struct {
	chapter int
	lines   []string
	cursor  int
}

// NewParser returns a parser positioned at the first line.
func NewParser(chapter int, lines []string) *Parser {
	return &Parser{chapter: chapter, lines: lines}
}

// Chapter returns the chapter the parser was created for.
func (p *Parser) Chapter() int { return p.chapter }

// Line returns the number of lines consumed so far.
func (p *Parser) Line() int { return p.cursor }

// NextLine returns the raw line at the cursor.
func (p *Parser) NextLine() (string, error) {
	if p.cursor >= len(p.lines) {
		return "", newParseError(EofUnexpected, p.cursor, nil)
	}
	line := p.lines[p.cursor]
	p.cursor++
	return line, nil
}

// NextInt parses the next line as a 32-bit decimal integer.
func (p *Parser) NextInt() (int, error) {
	line, err := p.NextLine()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, newParseError(IntParse, p.cursor, err)
	}
	return int(v), nil
}

// NextFloat parses the next line as a 32-bit float.
func (p *Parser) NextFloat() (float32, error) {
	line, err := p.NextLine()
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(line)
	// Only decimal notation: ParseFloat also takes hex floats and underscores.
	if strings.ContainsAny(text, "_xXpP") {
		return 0, newParseError(FloatParse, p.cursor,
			&strconv.NumError{Func: "ParseFloat", Num: text, Err: strconv.ErrSyntax})
	}
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, newParseError(FloatParse, p.cursor, err)
	}
	return float32(v), nil
}

// NextBool parses the next line as an integer restricted to 0 or 1.
func (p *Parser) NextBool() (bool, error) {
	v, err := p.NextInt()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, newParseError(IntParse, p.cursor, nil)
}

// ExpectEnd succeeds when every line was consumed. A single empty line left
// at the end of the file is tolerated.
func (p *Parser) ExpectEnd() error {
	remaining := len(p.lines) - p.cursor
	if remaining <= 0 {
		return nil
	}
	if remaining == 1 && p.lines[p.cursor] == "" {
		return nil
	}
	return newParseError(EofExpected, p.cursor+1, nil)
}

func (p *Parser) fillInts(dst []int) error {
	for i := range dst {
		v, err := p.NextInt()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func (p *Parser) fillFloats(dst []float32) error {
	for i := range dst {
		v, err := p.NextFloat()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}
