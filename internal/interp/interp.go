// Package interp folds a token sequence into a single command.
//
// It walks the tokens with a one-token lookback/lookahead window and a fixed,
// priority-ordered rule list. The order is load-bearing: rules are checked
// first match wins at every position, and command rules halt the walk.
package interp

import (
	"fmt"
	"time"

	"github.com/aidanlsb/remind/internal/interval"
	"github.com/aidanlsb/remind/internal/reminder"
	"github.com/aidanlsb/remind/internal/token"
)

// CommandKind identifies the outcome of interpreting a token sequence.
type CommandKind int

const (
	CmdAdd CommandKind = iota
	CmdList
	CmdHelp
	CmdUndo
	CmdClear
	CmdRemove
	CmdSkip
	CmdSkipNext
)

// Command is the interpreter's single result: either an immediate command or
// a fully specified reminder to add.
type Command struct {
	Kind     CommandKind
	Title    string            // CmdRemove, CmdSkip
	Count    uint              // CmdSkip, CmdSkipNext
	Reminder reminder.Reminder // CmdAdd
}

// UsageError reports an invalid token combination, carrying the offending
// window so the boundary layer can show what was misread.
type UsageError struct {
	Prev, Cur, Next token.Token
	Hint            string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid pattern (%s %s %s), try: %s",
		e.Prev, e.Cur, e.Next, e.Hint)
}

// defaultPolicy records which rule implied an interval when none was given
// explicitly. Higher values take precedence when several rules fire.
type defaultPolicy int

const (
	policyNone defaultPolicy = iota
	policyDailyImplicit
	policyYearlyByMonth
	policyYearlyOneShot
)

// Interpret resolves tokens into a command. now anchors the running end time
// and the plausible-future-year check.
func Interpret(tokens []token.Token, now time.Time) (Command, error) {
	var (
		title    string
		weekdays uint8
		repeats  uint = 1
		endTime       = now
		iv       interval.Interval
		policy   defaultPolicy
	)

	setPolicy := func(p defaultPolicy) {
		if p > policy {
			policy = p
		}
	}

	addTimeUnit := func(u token.Unit, n uint) {
		c := int(n)
		switch u {
		case token.Second:
			iv.Seconds += c
			endTime = endTime.Add(time.Duration(c) * time.Second)
		case token.Minute:
			iv.Minutes += c
			endTime = endTime.Add(time.Duration(c) * time.Minute)
		case token.Hour:
			iv.Hours += c
			endTime = endTime.Add(time.Duration(c) * time.Hour)
		case token.Day:
			iv.Days += c
			endTime = endTime.AddDate(0, 0, c)
		case token.Week:
			iv.Days += 7 * c
			endTime = endTime.AddDate(0, 0, 7*c)
		case token.Month:
			iv.Months += c
			endTime = interval.AddMonths(endTime, c)
		case token.Year:
			iv.Years += c
			endTime = interval.AddMonths(endTime, 12*c)
		}
	}

	for i, cur := range tokens {
		// next2 exists only to let the number-final skip orderings
		// ("skip 2 rest") outrank the skip-next rule; every other rule
		// sees just the previous/current/next window.
		var prev, next, next2 token.Token
		if i > 0 {
			prev = tokens[i-1]
		}
		if i < len(tokens)-1 {
			next = tokens[i+1]
		}
		if i < len(tokens)-2 {
			next2 = tokens[i+2]
		}

		switch {
		case cur.Kind == token.KindList:
			return Command{Kind: CmdList}, nil
		case cur.Kind == token.KindHelp:
			return Command{Kind: CmdHelp}, nil
		case cur.Kind == token.KindUndo:
			return Command{Kind: CmdUndo}, nil
		case cur.Kind == token.KindClear:
			return Command{Kind: CmdClear}, nil

		case cur.Kind == token.KindRemove && next.Kind == token.KindTitle:
			return Command{Kind: CmdRemove, Title: next.Text}, nil
		case prev.Kind == token.KindTitle && cur.Kind == token.KindRemove:
			return Command{Kind: CmdRemove, Title: prev.Text}, nil

		// skip 3 "rest" | skip "rest" 3 | "rest" skip 3 | skip3 "rest" | "rest" skip3
		case prev.Kind == token.KindSkip && prev.Value() == 0 &&
			cur.Kind == token.KindNumber && next.Kind == token.KindTitle:
			return Command{Kind: CmdSkip, Title: next.Text, Count: maxUint(cur.Value(), 1)}, nil
		case prev.Kind == token.KindSkip && prev.Value() == 0 &&
			cur.Kind == token.KindTitle && next.Kind == token.KindNumber:
			return Command{Kind: CmdSkip, Title: cur.Text, Count: maxUint(next.Value(), 1)}, nil
		case prev.Kind == token.KindTitle && cur.Kind == token.KindSkip &&
			cur.Value() == 0 && next.Kind == token.KindNumber:
			return Command{Kind: CmdSkip, Title: prev.Text, Count: maxUint(next.Value(), 1)}, nil
		case cur.Kind == token.KindSkip && next.Kind == token.KindTitle &&
			!(cur.Value() == 0 && next2.Kind == token.KindNumber):
			return Command{Kind: CmdSkip, Title: next.Text, Count: maxUint(cur.Value(), 1)}, nil
		case cur.Kind == token.KindTitle && next.Kind == token.KindSkip &&
			!(next.Value() == 0 && next2.Kind == token.KindNumber):
			return Command{Kind: CmdSkip, Title: cur.Text, Count: maxUint(next.Value(), 1)}, nil

		// A skip whose count or title lands two tokens later resolves on the
		// following window; stand down at this one.
		case cur.Kind == token.KindSkip && cur.Value() == 0 &&
			(next.Kind == token.KindNumber && next2.Kind == token.KindTitle ||
				next.Kind == token.KindTitle && next2.Kind == token.KindNumber):
			// handled at the next position

		// skip | skip 3 | skip3
		case cur.Kind == token.KindSkip && cur.Value() == 0 && next.Kind == token.KindNumber:
			return Command{Kind: CmdSkipNext, Count: maxUint(next.Value(), 1)}, nil
		case cur.Kind == token.KindSkip:
			return Command{Kind: CmdSkipNext, Count: maxUint(cur.Value(), 1)}, nil

		// Non-adjacent titles overwrite; only adjacent ones were merged.
		case cur.Kind == token.KindTitle:
			title = cur.Text

		case cur.Kind == token.KindRepeat && cur.Value() == 0 && next.Kind == token.KindNumber:
			repeats = next.Value()
		case cur.Kind == token.KindRepeat:
			repeats = cur.Value()

		case cur.Kind == token.KindMonth && next.Kind == token.KindNumber:
			endTime = withMonthDay(endTime, int(cur.Value()), int(next.Value()))
			setPolicy(policyYearlyByMonth)

		case cur.Kind == token.KindTimeUnit && next.Kind == token.KindNumber:
			addTimeUnit(cur.Unit, unitCount(cur.Value(), next.Value()))
		case prev.Kind == token.KindNumber && cur.Kind == token.KindTimeUnit:
			addTimeUnit(cur.Unit, unitCount(cur.Value(), prev.Value()))
		case cur.Kind == token.KindTimeUnit:
			addTimeUnit(cur.Unit, maxUint(cur.Value(), 1))

		// A plausible future year pins the end date: one-shot by definition.
		case cur.Kind == token.KindNumber && int(cur.Value()) >= now.Year() && cur.Value() < 2200:
			endTime = withYear(endTime, int(cur.Value()))
			setPolicy(policyYearlyOneShot)

		case cur.Kind == token.KindWeekDay:
			weekdays |= cur.Mask()
			setPolicy(policyDailyImplicit)

		case cur.Kind == token.KindTime:
			h, m, s := cur.Clock()
			endTime = time.Date(endTime.Year(), endTime.Month(), endTime.Day(),
				h, m, s, 0, endTime.Location())
			setPolicy(policyDailyImplicit)

		case cur.Kind == token.KindMonth:
			return Command{}, &UsageError{prev, cur, next, `remind july 4 "my reminder"`}
		case cur.Kind == token.KindRemove:
			return Command{}, &UsageError{prev, cur, next, `remind remove "my reminder"`}

		case cur.Kind == token.KindNumber:
			// Already consumed by an adjacent rule, or noise.
		}
	}

	if iv.IsZero() {
		switch policy {
		case policyYearlyOneShot:
			repeats = 1
		case policyYearlyByMonth:
			iv.Years = 1
		default:
			iv.Days = 1
		}
	}

	return Command{Kind: CmdAdd, Reminder: reminder.Reminder{
		Title:    title,
		Interval: iv,
		EndTime:  endTime,
		Repeats:  repeats,
		Weekdays: weekdays,
	}}, nil
}

// unitCount resolves a unit's count against an adjacent bare number: the
// unit's own affix wins when present, and the result is never below one.
func unitCount(own, adjacent uint) uint {
	n := own
	if n == 0 {
		n = adjacent
	}
	return maxUint(n, 1)
}

// withMonthDay pins the end date's month (0-based) and day-of-month,
// preserving year and time-of-day.
func withMonthDay(t time.Time, month0, day int) time.Time {
	return time.Date(t.Year(), time.Month(month0+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func withYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
