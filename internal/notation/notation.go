// Package notation parses the marks bowlers write on a score sheet, and plain
// lists of pin counts, into rolls for a game.
//
// Score sheet marks:
//
//	X  strike (also x)
//	/  spare: the pins left standing by the previous ball
//	-  miss (0 pins)
//	F  foul (0 pins)
//	0-9 pins knocked down
//
// Whitespace, commas and | may separate frames but are never required, so
// "X 7/ 9-" and "X7/9-" are the same game.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lox/tenpin/internal/game"
)

var (
	ErrStrikeNeedsFullRack = errors.New("notation: strike mark needs a full rack")
	ErrSpareNeedsFirstBall = errors.New("notation: spare mark needs a first ball in the frame")
	ErrEmpty               = errors.New("notation: no rolls")
)

// Format selects how input is read
type Format int

const (
	// Auto reads score sheet marks when the input contains X, /, -, F or |
	// and a list of integers otherwise.
	Auto Format = iota
	Marks
	Numeric
)

func (f Format) String() string {
	return [...]string{"auto", "marks", "numeric"}[f]
}

// ParseFormat maps a format name to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "marks", "notation":
		return Marks, nil
	case "numeric", "ints":
		return Numeric, nil
	}
	return Auto, fmt.Errorf("unknown format %q (want auto, marks or numeric)", name)
}

var sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Strike", Pattern: `[Xx]`},
	{Name: "Spare", Pattern: `/`},
	{Name: "Miss", Pattern: `[-Ff]`},
	{Name: "Pins", Pattern: `[0-9]`},
	{Name: "Sep", Pattern: `\|`},
	{Name: "Whitespace", Pattern: `[\s,]+`},
})

var numericLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Whitespace", Pattern: `[\s,]+`},
})

// Sheet is a parsed run of score sheet marks
type Sheet struct {
	Marks []*Mark `parser:"( @@ | Sep )*"`
}

// Mark is one ball on a score sheet
type Mark struct {
	Pos lexer.Position

	Strike bool `parser:"(  @Strike"`
	Spare  bool `parser:" | @Spare"`
	Miss   bool `parser:" | @Miss"`
	Pins   *int `parser:" | @Pins )"`
}

type numbers struct {
	Values []int `parser:"@Int*"`
}

var (
	sheetParser = participle.MustBuild[Sheet](
		participle.Lexer(sheetLexer),
		participle.Elide("Whitespace"),
	)
	numericParser = participle.MustBuild[numbers](
		participle.Lexer(numericLexer),
		participle.Elide("Whitespace"),
	)
)

// Parse reads score sheet marks
func Parse(input string) (*Sheet, error) {
	sheet, err := sheetParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("notation: parse %q: %w", input, err)
	}
	return sheet, nil
}

// ParseInts reads a whitespace or comma separated list of pin counts. Values
// are not range checked; that is the game's job.
func ParseInts(input string) ([]int, error) {
	n, err := numericParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("notation: parse %q: %w", input, err)
	}
	return n.Values, nil
}

// ParseRolls reads input in the given format and checks the result against
// the game rules, returning the rolls of a legal (possibly unfinished) game.
func ParseRolls(input string, format Format) ([]int, error) {
	if format == Auto {
		format = Detect(input)
	}

	var (
		rolls []int
		err   error
	)
	switch format {
	case Numeric:
		rolls, err = ParseInts(input)
		if err == nil {
			_, err = game.FromRolls(rolls)
		}
	default:
		var sheet *Sheet
		if sheet, err = Parse(input); err == nil {
			rolls, err = sheet.Rolls()
		}
	}
	if err != nil {
		return nil, err
	}
	if len(rolls) == 0 {
		return nil, ErrEmpty
	}
	return rolls, nil
}

// Detect guesses the format of input. Digit-only sheets such as "9090"
// are read as numbers; use Marks explicitly for those.
func Detect(input string) Format {
	if strings.ContainsAny(input, "Xx/-Ff|") {
		return Marks
	}
	return Numeric
}

// Resolve converts the mark to a pin count. fresh reports whether the ball is
// thrown at a newly set rack; standing is the pins left for it.
func (m *Mark) Resolve(standing int, fresh bool) (int, error) {
	switch {
	case m.Strike:
		if !fresh {
			return 0, ErrStrikeNeedsFullRack
		}
		return game.MaxPins, nil
	case m.Spare:
		if fresh {
			return 0, ErrSpareNeedsFirstBall
		}
		return standing, nil
	case m.Miss:
		return 0, nil
	case m.Pins != nil:
		return *m.Pins, nil
	}
	return 0, fmt.Errorf("notation: empty mark at %s", m.Pos)
}

func (m *Mark) String() string {
	switch {
	case m.Strike:
		return "X"
	case m.Spare:
		return "/"
	case m.Miss:
		return "-"
	case m.Pins != nil:
		return fmt.Sprint(*m.Pins)
	}
	return "?"
}

// Lane is a game that marks can be rolled into. *game.Game and
// *session.Session both satisfy it.
type Lane interface {
	IsComplete() bool
	Standing() int
	FreshRack() bool
	Roll(pins int) error
}

// Apply resolves each mark against l and rolls it, returning how many marks
// were rolled. On error l holds the rolls before the offending mark.
func (s *Sheet) Apply(l Lane) (int, error) {
	for i, m := range s.Marks {
		if l.IsComplete() {
			return i, fmt.Errorf("mark %d %q: %w", i+1, m.String(), game.ErrGameAlreadyComplete)
		}
		pins, err := m.Resolve(l.Standing(), l.FreshRack())
		if err == nil {
			err = l.Roll(pins)
		}
		if err != nil {
			return i, fmt.Errorf("mark %d %q: %w", i+1, m.String(), err)
		}
	}
	return len(s.Marks), nil
}

// Rolls resolves the sheet into pin counts by replaying it into a new game.
func (s *Sheet) Rolls() ([]int, error) {
	g := game.New()
	if _, err := s.Apply(g); err != nil {
		return nil, err
	}
	return g.Rolls(), nil
}
