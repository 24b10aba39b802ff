package token

import (
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/remind/internal/reminder"
)

// Tokenize converts raw command words (program name excluded) into typed
// tokens. now supplies the wall-clock defaults for partially specified
// clock times.
//
// The list/clear/help families short-circuit: whatever was collected before
// them is discarded and the single command token is returned alone.
func Tokenize(words []string, now time.Time) []Token {
	var toks []Token
	for _, word := range words {
		if n, err := strconv.ParseUint(word, 10, 32); err == nil {
			toks = append(toks, Number(uint(n)))
			continue
		}

		lead, core, trail := SplitNumAffix(word)
		num := lead
		if trail > num {
			num = trail
		}

		classified, ok := classify(core, num)
		if !ok {
			toks = append(toks, fallbackToken(word, now))
			continue
		}
		if len(classified) == 1 {
			switch classified[0].Kind {
			case KindList, KindClear, KindHelp:
				return classified
			}
		}
		toks = append(toks, classified...)
	}
	return mergeTitles(toks)
}

// classify matches the alphabetic core against the alias tables. The second
// result is false when no table matches and the word should fall through to
// the clock-time/title fallback.
//
// The tables are intentionally generous with abbreviations and misspellings;
// they mirror what users actually type in a hurry.
func classify(core string, num uint) ([]Token, bool) {
	one := func(t Token) ([]Token, bool) { return []Token{t}, true }

	// Each recurring-cadence word implies "repeat forever on deadline".
	cadence := func(u Unit) ([]Token, bool) {
		return []Token{Repeat(0), TimeUnit(u, maxUint(num, 1))}, true
	}

	switch core {
	case "rep", "repe", "repea", "repeat", "rp", "times":
		return one(Repeat(num))
	case "repeating", "infinite", "series", "recurring", "loop", "looping",
		"cyclic", "ongoing", "repetetive":
		return one(Repeat(0))
	case "r", "re", "rem", "remo", "remov", "remove", "rm", "rmv", "de", "del",
		"dele", "delet", "delete", "dl", "dlt", "erase", "forget", "forgt", "frgt":
		return one(Remove())

	case "hourly", "everyhour", "every-hour":
		return cadence(Hour)
	case "daily", "everyday", "every-day":
		return cadence(Day)
	case "weekly", "everyweek", "every-week":
		return cadence(Week)
	case "monthly", "everymonth", "every-month":
		return cadence(Month)
	case "yearly", "everyyear", "every-year", "annual", "annually", "anual", "anually":
		return cadence(Year)

	case "weekend", "weeken", "weeke", "weeknd", "wknd", "wkd", "break", "brk",
		"holiday", "rest", "week-end",
		"sun,sat", "sat,sun", "sa,su", "su,sa", "sn,st", "st,sn",
		"sun|sat", "sat|sun", "sa|su", "su|sa", "sn|st", "st|sn",
		"sun+sat", "sat+sun", "sa+su", "su+sa", "sn+st", "st+sn",
		"sun-sat", "sat-sun", "sa-su", "su-sa", "sn-st", "st-sn",
		"sun_sat", "sat_sun", "sa_su", "su_sa", "sn_st", "st_sn":
		return one(WeekDay(reminder.Weekend))
	case "work", "wrk", "business", "biz", "busy", "workweek", "work-week":
		return one(WeekDay(reminder.Workdays))

	case "l", "li", "lis", "list", "ls", "reminders", "all", "see", "everything":
		return one(List())
	case "clear", "clean", "cls", "clr", "remove-all", "rm-all", "del-all",
		"delete-all", "erase-all", "rmv-all", "dlt-all":
		return one(Clear())
	case "h":
		if num == 0 {
			return one(Help())
		}
		return one(TimeUnit(Hour, num))
	case "help", "hlp":
		if num == 0 {
			return one(Help())
		}
		return nil, false

	case "s", "se", "sec", "seco", "secon", "second", "seconds", "secs", "sc",
		"scnd", "scnds", "secndo", "sencod", "secodn", "secnod":
		return one(TimeUnit(Second, num))
	case "m", "mi", "min", "minu", "minut", "minute", "minutes", "mins", "mn",
		"mnt", "mnts", "mintue", "minteu", "mitneu", "mns":
		return one(TimeUnit(Minute, num))
	case "ho", "hou", "hour", "hr", "hrs", "hours", "hs", "horus":
		return one(TimeUnit(Hour, num))
	case "d", "da", "day", "days", "ds":
		return one(TimeUnit(Day, num))
	case "w", "we", "wee", "week", "weeks", "wk", "wks":
		return one(TimeUnit(Week, num))
	case "mo", "mont", "month", "months", "mnth", "mnths":
		return one(TimeUnit(Month, num))
	case "y", "ye", "yea", "year", "years", "yr", "yrs", "ys":
		return one(TimeUnit(Year, num))

	case "su", "sun", "sund", "sunda", "sunday", "sn", "snd":
		return one(WeekDay(reminder.Sunday))
	case "mon", "mond", "monda", "monday", "md", "mnd":
		return one(WeekDay(reminder.Monday))
	case "tu", "tue", "tues", "tuesd", "tuesda", "tuesday", "tsd":
		return one(WeekDay(reminder.Tuesday))
	case "wed", "wedn", "wedne", "wednes", "wednesd", "wednesda", "wednesday",
		"wd", "wednsd", "wdnsd":
		return one(WeekDay(reminder.Wednesday))
	case "th", "thu", "thur", "thurs", "thursd", "thursda", "thursday", "thrsd":
		return one(WeekDay(reminder.Thursday))
	case "fr", "fri", "frid", "frida", "friday", "fd", "frd":
		return one(WeekDay(reminder.Friday))
	case "sa", "sat", "satu", "satur", "saturd", "saturda", "saturday", "st", "strd":
		return one(WeekDay(reminder.Saturday))

	case "january", "janu", "jan":
		return one(MonthIndex(0))
	case "february", "febr", "feb":
		return one(MonthIndex(1))
	case "march", "marc", "mar":
		return one(MonthIndex(2))
	case "april", "aprl", "apr":
		return one(MonthIndex(3))
	case "may":
		return one(MonthIndex(4))
	case "june", "jun":
		return one(MonthIndex(5))
	case "july", "jul":
		return one(MonthIndex(6))
	case "august", "augu", "aug":
		return one(MonthIndex(7))
	case "september", "sept", "sep":
		return one(MonthIndex(8))
	case "october", "octo", "oct":
		return one(MonthIndex(9))
	case "november", "nove", "nov":
		return one(MonthIndex(10))
	case "december", "dece", "dec":
		return one(MonthIndex(11))

	case "skip", "sk", "skp", "snooze", "snz", "skip-next", "sk-next",
		"skp-next", "snooze-next", "snz-next":
		return one(Skip(num))
	case "undo", "goback", "go-back":
		return one(Undo())
	}
	return nil, false
}

// fallbackToken handles words no alias table recognizes: clock times like
// "11am", "12:30" or "7:15:30pm", else free title text. Components omitted
// from a clock time default to the current wall-clock value.
func fallbackToken(word string, now time.Time) Token {
	s := word
	pm := strings.HasSuffix(s, "pm")
	am := strings.HasSuffix(s, "am")
	if !pm && !am && !strings.Contains(s, ":") {
		return Title(word)
	}
	if pm || am {
		s = s[:len(s)-2]
	}
	s = strings.TrimSuffix(s, ":")

	const missing = -1
	parts := strings.SplitN(s, ":", 3)
	comp := func(i int) int {
		if i >= len(parts) {
			return missing
		}
		n, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return missing
		}
		return int(n)
	}
	hour, min, sec := comp(0), comp(1), comp(2)
	if pm && hour != missing {
		hour = (hour + 12) % 24
	}

	if hour == missing && min == missing && sec == missing {
		return Title(word)
	}
	if hour == missing {
		hour = now.Hour()
	}
	if min == missing {
		min = now.Minute()
	}
	if sec == missing {
		sec = now.Second()
	}
	return TimeOfDay(hour, min, sec)
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
