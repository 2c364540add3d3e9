package mwsql

import "time"

// Timestamp is a MediaWiki MWTimestamp: always stored in the database
// (and dumped) as UTC. MySQL dumps encode it either in the compact
// "YYYYMMDDhhmmss" form (14 digits, the normal case) or, for a few
// legacy columns, in the "YYYY-MM-DD hh:mm:ss" form (19 bytes). Both are
// accepted; unlike time.Date, an out-of-range component (month 13, day
// 30 of February, hour 24, ...) is rejected rather than silently
// normalized into the following month/day/hour.
type Timestamp struct {
	time.Time
}

// Expiry is either a Timestamp or the literal "infinity", as used by
// page_restrictions.pr_expiry and similar columns.
type Expiry struct {
	t       Timestamp
	infinte bool
}

// Infinite reports whether this Expiry is the "infinity" sentinel.
func (e Expiry) Infinite() bool {
	return e.infinte
}

// Time returns the underlying Timestamp. Calling it on an infinite
// Expiry returns the zero Timestamp; callers must check Infinite first.
func (e Expiry) Time() Timestamp {
	return e.t
}

func digits2(buf []byte, pos int) (int, bool) {
	if pos+2 > len(buf) || !isDigit(buf[pos]) || !isDigit(buf[pos+1]) {
		return 0, false
	}
	return int(buf[pos]-'0')*10 + int(buf[pos+1]-'0'), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digits4(buf []byte, pos int) (int, bool) {
	if pos+4 > len(buf) {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		if !isDigit(buf[pos+i]) {
			return 0, false
		}
	}
	v := 0
	for i := 0; i < 4; i++ {
		v = v*10 + int(buf[pos+i]-'0')
	}
	return v, true
}

// parseTimestampComponents reads 14 digits, optionally interspersed with
// the literal "-" and " " and ":" separators of the long form, starting
// at pos. Returns the byte length consumed and the six numeric fields.
func parseTimestampComponents(buf []byte, pos int) (consumed int, year, month, day, hour, min, sec int, ok bool) {
	i := pos
	year, ok = digits4(buf, i)
	if !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	i += 4
	longForm := i < len(buf) && buf[i] == '-'
	if longForm {
		i++
	}
	if month, ok = digits2(buf, i); !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	i += 2
	if longForm {
		if i >= len(buf) || buf[i] != '-' {
			return 0, 0, 0, 0, 0, 0, 0, false
		}
		i++
	}
	if day, ok = digits2(buf, i); !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	i += 2
	if longForm {
		if i >= len(buf) || buf[i] != ' ' {
			return 0, 0, 0, 0, 0, 0, 0, false
		}
		i++
	}
	if hour, ok = digits2(buf, i); !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	i += 2
	if longForm {
		if i >= len(buf) || buf[i] != ':' {
			return 0, 0, 0, 0, 0, 0, 0, false
		}
		i++
	}
	if min, ok = digits2(buf, i); !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	i += 2
	if longForm {
		if i >= len(buf) || buf[i] != ':' {
			return 0, 0, 0, 0, 0, 0, 0, false
		}
		i++
	}
	if sec, ok = digits2(buf, i); !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	i += 2
	return i - pos, year, month, day, hour, min, sec, true
}

// ParseTimestamp recognizes a single-quoted, 14- or 19-byte MediaWiki
// timestamp ('20210101000000' or '2021-01-01 00:00:00') and validates
// that every field is in range for its own calendar unit, rejecting
// what time.Date would otherwise silently normalize (e.g.
// '20210230000000', "February 30th").
func ParseTimestamp(buf []byte, pos int) (int, Timestamp, *ParseError) {
	const label = "Timestamp in yyyymmddhhmmss or yyyy-mm-dd hh:mm:ss format"
	end, raw, rawErr := ParseRawString(buf, pos)
	if rawErr != nil {
		return end, Timestamp{}, withContext(rawErr, pos, label)
	}
	rawBuf := []byte(raw)
	consumed, year, month, day, hour, min, sec, ok := parseTimestampComponents(rawBuf, 0)
	if !ok || consumed != len(rawBuf) {
		return pos, Timestamp{}, withContext(kindError(buf, pos, "verify"), pos, label)
	}
	if month < 1 || month > 12 {
		return pos, Timestamp{}, withContext(kindError(buf, pos, "verify"), pos, label)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return pos, Timestamp{}, withContext(kindError(buf, pos, "verify"), pos, label)
	}
	if hour > 23 || min > 59 || sec > 60 {
		return pos, Timestamp{}, withContext(kindError(buf, pos, "verify"), pos, label)
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	return end, Timestamp{t}, nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ParseExpiry recognizes either the literal "infinity" or a quoted
// Timestamp, as used by pr_expiry and similar columns.
func ParseExpiry(buf []byte, pos int) (int, Expiry, *ParseError) {
	const label = "expiry"
	if end, ts, tErr := ParseTimestamp(buf, pos); tErr == nil {
		return end, Expiry{t: ts}, nil
	}
	if matchInfinity(buf, pos) {
		return pos + len("'infinity'"), Expiry{infinte: true}, nil
	}
	return pos, Expiry{}, withContext(kindError(buf, pos, "alt"), pos, label)
}

func matchInfinity(buf []byte, pos int) bool {
	const lit = "'infinity'"
	if pos+len(lit) > len(buf) {
		return false
	}
	return string(buf[pos:pos+len(lit)]) == lit
}
