package mwsql

import "testing"

func TestParseTimestampCompactForm(t *testing.T) {
	end, ts, err := ParseTimestamp([]byte("'20200201151554'"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if end != len("'20200201151554'") {
		t.Errorf("end = %d", end)
	}
	if got := ts.Format("2006-01-02T15:04:05Z"); got != "2020-02-01T15:15:54Z" {
		t.Errorf("ts = %s", got)
	}
}

func TestParseTimestampSpacedForm(t *testing.T) {
	_, ts, err := ParseTimestamp([]byte("'2020-02-01 15:15:54'"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := ts.Format("2006-01-02T15:04:05Z"); got != "2020-02-01T15:15:54Z" {
		t.Errorf("ts = %s", got)
	}
}

func TestParseTimestampRejectsInvalidCalendarDates(t *testing.T) {
	cases := []string{
		"'20210230000000'", // Feb 30
		"'20211301000000'", // month 13
		"'20210100000000'", // day 0
		"'20210132000000'", // day 32
		"'20210101240000'", // hour 24
		"'20210101006100'", // minute 61
	}
	for _, c := range cases {
		if _, _, err := ParseTimestamp([]byte(c), 0); err == nil {
			t.Errorf("ParseTimestamp(%s) should reject invalid date, got no error", c)
		}
	}
}

func TestParseTimestampLeapYear(t *testing.T) {
	if _, _, err := ParseTimestamp([]byte("'20200229000000'"), 0); err != nil {
		t.Errorf("2020-02-29 is a valid leap day: %v", err)
	}
	if _, _, err := ParseTimestamp([]byte("'20210229000000'"), 0); err == nil {
		t.Errorf("2021-02-29 is not a leap day, should fail")
	}
}

func TestParseTimestampLeapSecond(t *testing.T) {
	if _, _, err := ParseTimestamp([]byte("'20210101000060'"), 0); err != nil {
		t.Errorf("second 60 should be tolerated as a leap second: %v", err)
	}
}

func TestParseExpiryInfinite(t *testing.T) {
	end, e, err := ParseExpiry([]byte("'infinity'"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Infinite() {
		t.Error("expected Infinite()")
	}
	if end != len("'infinity'") {
		t.Errorf("end = %d", end)
	}
}

func TestParseExpiryTimestamp(t *testing.T) {
	_, e, err := ParseExpiry([]byte("'20200201151554'"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if e.Infinite() {
		t.Error("did not expect Infinite()")
	}
}
