package mwsql

import "bytes"

// valuesSuffix is the fixed text every INSERT statement's preamble ends
// with, once the table name has been matched.
const valuesSuffix = "` VALUES "

// RowIterator lazily parses one row type out of a mysqldump INSERT
// stream. It is single-pass: construct with Iterate, call Next in a
// loop like bufio.Scanner, and read Row after each successful Next.
//
//	it := Iterate(buf, ParsePage)
//	for it.Next() {
//		page := it.Row()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type RowIterator[R any] struct {
	buf      []byte
	pos      int
	parseRow func([]byte, int) (int, R, *ParseError)
	state    streamState
	row      R
	err      *ParseError
	searched bool
}

type streamState int

const (
	stateSearching streamState = iota
	stateInTupleStream
	stateDone
)

// Iterate returns an iterator that scans buf for the first `INSERT INTO`
// statement and then yields one row per tuple, crossing statement
// boundaries transparently, using parseRow to decode each tuple.
func Iterate[R any](buf []byte, parseRow func([]byte, int) (int, R, *ParseError)) *RowIterator[R] {
	return &RowIterator[R]{buf: buf, parseRow: parseRow}
}

// Next advances the iterator and reports whether a row is available via
// Row. It returns false both on a clean end of stream (the remaining
// input did not match a separator) and on a parse failure; call Err to
// tell the two apart.
func (it *RowIterator[R]) Next() bool {
	if it.state == stateDone {
		return false
	}
	if !it.searched {
		it.searched = true
		start, ok := findFirstInsertInto(it.buf)
		if !ok {
			it.state = stateDone
			it.err = kindError(it.buf, 0, "INSERT INTO statement")
			return false
		}
		it.pos = start
		it.state = stateInTupleStream
	}
	next, ok := it.matchStatementHead(it.pos)
	if !ok {
		next, ok = matchCommaSeparator(it.buf, it.pos)
	}
	if !ok {
		it.state = stateDone
		return false
	}
	end, row, err := it.parseRow(it.buf, next)
	if err != nil {
		it.state = stateDone
		it.err = err
		return false
	}
	it.pos = end
	it.row = row
	return true
}

// Row returns the row produced by the most recent successful call to
// Next.
func (it *RowIterator[R]) Row() R {
	return it.row
}

// Err returns the error that stopped iteration, or nil if iteration
// stopped because the remaining input no longer matched a separator
// (the ordinary, well-formed end of a dump file).
func (it *RowIterator[R]) Err() *ParseError {
	return it.err
}

// Remaining returns the input starting at the iterator's current
// cursor. After Next returns false with a nil Err, callers should
// check that this begins with the mysqldump comment trailer `;\n/*`
// before treating the file as fully consumed.
func (it *RowIterator[R]) Remaining() []byte {
	return it.buf[it.pos:]
}

// matchStatementHead tries to match, at pos, optional whitespace,
// optional ';', optional whitespace, then an INSERT INTO preamble for
// any lowercase table name, returning the position right after the
// trailing space in "VALUES ". It does not check the table name
// against R; the caller is responsible for matching script to type.
func (it *RowIterator[R]) matchStatementHead(pos int) (int, bool) {
	buf := it.buf
	p := skipSpace(buf, pos)
	if p < len(buf) && buf[p] == ';' {
		p++
		p = skipSpace(buf, p)
	}
	const head = "INSERT INTO `"
	if !hasPrefixAt(buf, p, head) {
		return 0, false
	}
	p += len(head)
	nameStart := p
	for p < len(buf) && isTableNameByte(buf[p]) {
		p++
	}
	if p == nameStart {
		return 0, false
	}
	if !hasPrefixAt(buf, p, valuesSuffix) {
		return 0, false
	}
	p += len(valuesSuffix)
	return p, true
}

func matchCommaSeparator(buf []byte, pos int) (int, bool) {
	if pos < len(buf) && buf[pos] == ',' {
		return pos + 1, true
	}
	return 0, false
}

func skipSpace(buf []byte, pos int) int {
	for pos < len(buf) && isSQLSpace(buf[pos]) {
		pos++
	}
	return pos
}

func isSQLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isTableNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || b == '_'
}

func hasPrefixAt(buf []byte, pos int, prefix string) bool {
	if pos+len(prefix) > len(buf) {
		return false
	}
	return string(buf[pos:pos+len(prefix)]) == prefix
}

// findFirstInsertInto scans buf for the earliest byte offset of the
// literal "INSERT INTO" token, the anchor the driver searches for
// before it starts matching statement heads.
func findFirstInsertInto(buf []byte) (int, bool) {
	idx := bytes.Index(buf, []byte("INSERT INTO"))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
