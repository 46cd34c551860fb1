package save

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_TypedReads(t *testing.T) {
	p := NewParser(2, []string{"Kris", "42 ", " -7", "1.5 ", "1", "0"})

	s, err := p.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "Kris", s)

	n, err := p.NextInt()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = p.NextInt()
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	f, err := p.NextFloat()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	b, err := p.NextBool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = p.NextBool()
	require.NoError(t, err)
	assert.False(t, b)

	assert.Equal(t, 6, p.Line())
	assert.NoError(t, p.ExpectEnd())
}

func TestParser_EofUnexpectedCarriesCursor(t *testing.T) {
	p := NewParser(1, []string{"only"})
	_, err := p.NextLine()
	require.NoError(t, err)

	_, err = p.NextInt()
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, EofUnexpected, perr.Kind)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "file ended unexpectedly on line 1", perr.Error())
}

func TestParser_IntParseReportsLine(t *testing.T) {
	p := NewParser(1, []string{"1", "x"})
	_, err := p.NextInt()
	require.NoError(t, err)

	_, err = p.NextInt()
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, IntParse, perr.Kind)
	assert.Equal(t, 2, perr.Line)
	assert.Error(t, errors.Unwrap(perr), "strconv error should be wrapped")
}

func TestParser_IntOutOfRange(t *testing.T) {
	p := NewParser(1, []string{"2147483648"})
	_, err := p.NextInt()
	assert.ErrorIs(t, err, &ParseError{Kind: IntParse, Line: 1})
}

func TestParser_FloatParse(t *testing.T) {
	p := NewParser(1, []string{"one point five"})
	_, err := p.NextFloat()
	assert.ErrorIs(t, err, &ParseError{Kind: FloatParse, Line: 1})
}

func TestParser_FloatDecimalOnly(t *testing.T) {
	for _, text := range []string{"0x1p-2", "0X1P2", "1_000.5", "0x_1p0"} {
		p := NewParser(2, []string{text})
		_, err := p.NextFloat()
		assert.ErrorIs(t, err, &ParseError{Kind: FloatParse, Line: 1}, text)
	}

	for text, want := range map[string]float32{"1e3": 1000, "-0.5 ": -0.5, "+2.25": 2.25, ".5": 0.5} {
		p := NewParser(2, []string{text})
		f, err := p.NextFloat()
		require.NoError(t, err, text)
		assert.Equal(t, want, f, text)
	}
}

func TestParser_BoolRejectsOtherIntegers(t *testing.T) {
	p := NewParser(1, []string{"2"})
	_, err := p.NextBool()
	assert.ErrorIs(t, err, &ParseError{Kind: IntParse, Line: 1})
}

func TestParser_ExpectEnd(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		consume int
		wantErr bool
	}{
		{"all consumed", []string{"1", "2"}, 2, false},
		{"one trailing blank", []string{"1", ""}, 1, false},
		{"trailing content", []string{"1", "2"}, 1, true},
		{"two trailing blanks", []string{"1", "", ""}, 1, true},
		{"trailing whitespace line", []string{"1", " "}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(1, tt.lines)
			for i := 0; i < tt.consume; i++ {
				_, err := p.NextLine()
				require.NoError(t, err)
			}
			err := p.ExpectEnd()
			if tt.wantErr {
				assert.ErrorIs(t, err, &ParseError{Kind: EofExpected})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
