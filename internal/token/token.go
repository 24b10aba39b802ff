// Package token classifies raw command-line words into typed tokens.
//
// Classification is driven by large alias tables (deliberately tolerant of
// misspellings), a numeric-affix splitter ("32week4"), and a clock-time
// fallback for words like "11am" or "12:30". Adjacent free-text tokens are
// merged so multi-word titles work without quoting.
package token

import "fmt"

// Kind tags a Token.
type Kind int

const (
	// KindNone is the out-of-bounds sentinel used by the interpreter's
	// sliding window. The tokenizer never emits it.
	KindNone Kind = iota
	KindTitle
	KindNumber
	KindTimeUnit
	KindRemove
	KindRepeat
	KindWeekDay
	KindTime
	KindMonth
	KindSkip
	KindUndo
	KindClear
	KindList
	KindHelp
)

// Unit is the calendar unit carried by a TimeUnit token.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unit"
}

// Token is a tagged value. The numeric payload is shared between the kinds
// that carry a count (Number, TimeUnit, Repeat, Skip, Month) and accessed
// through Value/SetValue; the unit tag stays attached to its payload.
type Token struct {
	Kind Kind
	Text string // Title payload
	Unit Unit   // TimeUnit payload
	num  uint
	mask uint8 // WeekDay payload
	h    int   // Time payload
	m    int
	s    int
}

// Value returns the shared numeric payload.
func (t Token) Value() uint { return t.num }

// SetValue replaces the shared numeric payload.
func (t *Token) SetValue(n uint) { t.num = n }

// Mask returns the weekday bitmask payload.
func (t Token) Mask() uint8 { return t.mask }

// Clock returns the time-of-day payload.
func (t Token) Clock() (hour, min, sec int) { return t.h, t.m, t.s }

func (t Token) String() string {
	switch t.Kind {
	case KindTitle:
		return fmt.Sprintf("Title(%q)", t.Text)
	case KindNumber:
		return fmt.Sprintf("Number(%d)", t.num)
	case KindTimeUnit:
		return fmt.Sprintf("%d %s", t.num, t.Unit)
	case KindRepeat:
		return fmt.Sprintf("Repeat(%d)", t.num)
	case KindWeekDay:
		return fmt.Sprintf("WeekDay(%07b)", t.mask)
	case KindTime:
		return fmt.Sprintf("Time(%02d:%02d:%02d)", t.h, t.m, t.s)
	case KindMonth:
		return fmt.Sprintf("Month(%d)", t.num)
	case KindSkip:
		return fmt.Sprintf("Skip(%d)", t.num)
	case KindRemove:
		return "Remove"
	case KindUndo:
		return "Undo"
	case KindClear:
		return "Clear"
	case KindList:
		return "List"
	case KindHelp:
		return "Help"
	}
	return "None"
}

// Constructors keep call sites in the interpreter and tests readable.

func Title(text string) Token            { return Token{Kind: KindTitle, Text: text} }
func Number(n uint) Token                { return Token{Kind: KindNumber, num: n} }
func TimeUnit(u Unit, n uint) Token      { return Token{Kind: KindTimeUnit, Unit: u, num: n} }
func Repeat(n uint) Token                { return Token{Kind: KindRepeat, num: n} }
func WeekDay(mask uint8) Token           { return Token{Kind: KindWeekDay, mask: mask} }
func TimeOfDay(hour, min, sec int) Token { return Token{Kind: KindTime, h: hour, m: min, s: sec} }
func MonthIndex(idx uint) Token          { return Token{Kind: KindMonth, num: idx} }
func Skip(n uint) Token                  { return Token{Kind: KindSkip, num: n} }
func Remove() Token                      { return Token{Kind: KindRemove} }
func Undo() Token                        { return Token{Kind: KindUndo} }
func Clear() Token                       { return Token{Kind: KindClear} }
func List() Token                        { return Token{Kind: KindList} }
func Help() Token                        { return Token{Kind: KindHelp} }

// mergeTitles space-joins runs of adjacent Title tokens.
func mergeTitles(toks []Token) []Token {
	out := toks[:0]
	for _, t := range toks {
		if len(out) > 0 && t.Kind == KindTitle && out[len(out)-1].Kind == KindTitle {
			out[len(out)-1].Text += " " + t.Text
			continue
		}
		out = append(out, t)
	}
	return out
}
