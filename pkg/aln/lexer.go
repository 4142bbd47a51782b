// 19 Oct 2026
// The scanner under both grammars. It walks over a byte slice holding
// the whole file, keeping track of line and column for error messages.
// Grammars are written as state functions, as in the seq package's
// fasta reader. Each state does some work and returns the next state.
// Returning nil stops the machine, either at the end of the input or
// after an error has been stored in the lexer.

package aln

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	nl         = '\n'
	cmmtChar   = '>' // starts a record in fasta format
	maxNameLen = 100 // longest phylip name
)

// mkSet returns a table that is true for every byte in s.
func mkSet(s string) (t [256]bool) {
	for i := 0; i < len(s); i++ {
		t[s[i]] = true
	}
	return
}

const (
	alpha  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits = "0123456789"
)

var (
	residueSet = mkSet(alpha + "?.-")
	nameSet    = mkSet(alpha + digits + "!#$%&'*+-./;<=>?@[\\]^_`{|}~")
	blankSet   = mkSet(" \t\r\v\f") // white space within a line
	digitSet   = mkSet(digits)
)

type stateFn func(*lexer) stateFn

type lexer struct {
	input  []byte
	pos    int // next byte to look at
	line   int // line number of pos, from 1
	lstart int // offset in input of the start of this line
	hdr    *header
	recs   []Record
	name   string // name of record being read
	seq    []byte // residues of record being read
	err    *SyntaxError
}

func newLexer(input []byte) *lexer { return &lexer{input: input, line: 1} }

func (l *lexer) eof() bool { return l.pos >= len(l.input) }

// peek returns the next byte without moving. At the end of input it
// returns zero, which is in none of the character sets.
func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.input[l.pos]
}

// cur is the next byte, quoted for an error message.
func (l *lexer) cur() string {
	if l.eof() {
		return "end of input"
	}
	return strconv.Quote(string(l.input[l.pos : l.pos+1]))
}

func (l *lexer) atEOL() bool { return l.eof() || l.peek() == nl }

// advance moves over one byte, counting lines.
func (l *lexer) advance() {
	if l.input[l.pos] == nl {
		l.line++
		l.lstart = l.pos + 1
	}
	l.pos++
}

// skipBlank moves over white space, but stops at a newline.
func (l *lexer) skipBlank() {
	for blankSet[l.peek()] {
		l.pos++
	}
}

// skipWhite moves over white space including newlines.
func (l *lexer) skipWhite() {
	for blankSet[l.peek()] || (!l.eof() && l.peek() == nl) {
		l.advance()
	}
}

// endLine moves past the newline, if there is one.
func (l *lexer) endLine() {
	if !l.eof() {
		l.advance()
	}
}

// restOfLine returns everything up to the newline and moves past it.
// A carriage return before the newline is dropped.
func (l *lexer) restOfLine() []byte {
	start := l.pos
	for !l.atEOL() {
		l.pos++
	}
	b := bytes.TrimSuffix(l.input[start:l.pos], []byte{'\r'})
	l.endLine()
	return b
}

// digits returns a run of decimal digits, possibly empty.
func (l *lexer) digits() string {
	start := l.pos
	for digitSet[l.peek()] {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

// residues appends a run of residue symbols to the sequence being
// built and says how many there were.
func (l *lexer) residues() int {
	start := l.pos
	for residueSet[l.peek()] {
		l.pos++
	}
	l.seq = append(l.seq, l.input[start:l.pos]...)
	return l.pos - start
}

// emit finishes the record being read.
func (l *lexer) emit() {
	l.recs = append(l.recs, Record{Name: l.name, Seq: string(l.seq)})
	l.name = ""
	l.seq = l.seq[:0]
}

// fail stores a syntax error at the current position and stops.
func (l *lexer) fail(format string, args ...any) stateFn {
	inline := l.input[l.lstart:]
	if ndx := bytes.IndexByte(inline, nl); ndx != -1 {
		inline = inline[:ndx]
	}
	l.err = &SyntaxError{
		Line:   l.line,
		Col:    l.pos - l.lstart + 1,
		Desc:   fmt.Sprintf(format, args...),
		inline: string(bytes.TrimSuffix(inline, []byte{'\r'})),
	}
	return nil
}

// run drives the machine from start until some state returns nil.
func (l *lexer) run(start stateFn) error {
	for state := start; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return l.err
	}
	return nil
}
