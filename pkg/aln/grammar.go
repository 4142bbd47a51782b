// 19 Oct 2026
// The two grammars.
//
// Phylip, relaxed so names can be up to 100 characters:
//
//	2 4   anything here is ignored
//	dog   GATC
//	cat   GA TT
//
// Fasta:
//
//	>dog
//	GA
//	TC
//	>cat
//	GATT
//
// Residues are letters plus "?", "." and "-" in both. Every byte of the
// input has to be used by the grammar. Anything left over is an error.

package aln

import "strconv"

// header is what the first line of a phylip file promises.
type header struct {
	nSpecies int
	seqLen   int
}

// phyHeader reads the two numbers at the top of a phylip file.
func phyHeader(l *lexer) stateFn {
	l.skipWhite()
	var n [2]int
	for i, what := range []string{"number of species", "sequence length"} {
		if i > 0 {
			l.skipBlank()
		}
		s := l.digits()
		if s == "" {
			return l.fail("expected %s in phylip header, got %s", what, l.cur())
		}
		var err error
		if n[i], err = strconv.Atoi(s); err != nil {
			return l.fail("%s %s in phylip header is too big", what, s)
		}
	}
	l.restOfLine()
	l.hdr = &header{nSpecies: n[0], seqLen: n[1]}
	return phyName
}

// phyName reads the name at the start of a phylip record.
// Blank lines between records are allowed.
func phyName(l *lexer) stateFn {
	l.skipWhite()
	if l.eof() {
		if len(l.recs) == 0 {
			return l.fail("no sequences after phylip header")
		}
		return nil
	}
	start := l.pos
	for nameSet[l.peek()] {
		l.pos++
	}
	switch n := l.pos - start; {
	case n == 0:
		return l.fail("bad character %s at start of sequence name", l.cur())
	case n > maxNameLen:
		l.pos = start
		return l.fail("sequence name longer than %d characters", maxNameLen)
	}
	l.name = string(l.input[start:l.pos])
	switch {
	case l.atEOL():
		return l.fail("no sequence after name %q", l.name)
	case !blankSet[l.peek()]:
		return l.fail("bad character %s in sequence name", l.cur())
	}
	return phySeq
}

// phySeq reads residue tokens to the end of the line.
func phySeq(l *lexer) stateFn {
	for {
		l.skipBlank()
		if l.atEOL() {
			break
		}
		if l.residues() == 0 {
			return l.fail("bad residue %s in sequence %q", l.cur(), l.name)
		}
	}
	if len(l.seq) == 0 {
		return l.fail("no sequence after name %q", l.name)
	}
	l.endLine()
	l.emit()
	return phyName
}

// fasStart skips any white space before the first record.
func fasStart(l *lexer) stateFn {
	l.skipWhite()
	if l.eof() {
		return l.fail("no sequences found")
	}
	if l.peek() != cmmtChar || l.pos != l.lstart {
		return l.fail("expected %q at start of line, got %s", cmmtChar, l.cur())
	}
	return fasName
}

// fasName takes the rest of the marker line, exactly, as the name.
func fasName(l *lexer) stateFn {
	l.pos++ // the '>'
	l.name = string(l.restOfLine())
	return fasSeq
}

// fasSeq reads residue lines until the next marker line or the end.
func fasSeq(l *lexer) stateFn {
	for {
		l.skipWhite()
		if l.eof() || (l.peek() == cmmtChar && l.pos == l.lstart) {
			break
		}
		if l.residues() == 0 {
			return l.fail("bad residue %s in sequence %q", l.cur(), l.name)
		}
	}
	if len(l.seq) == 0 {
		return l.fail("no sequence after %q", l.name)
	}
	l.emit()
	if l.eof() {
		return nil
	}
	return fasName
}
