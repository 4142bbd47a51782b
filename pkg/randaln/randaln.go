// 31 July 2020
// 19 Oct 2026 writes whole alignments, phylip or fasta, not just
// fasta sequences.

// Package randaln writes random alignments. They are for testing, so
// there is random white space in the sequences, which the readers have
// to remove, and an option to break the alignment on purpose.
package randaln

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/andrew-torda/seqaln/pkg/common"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// Args is the set of arguments passed to the main function
type Args struct {
	Iseed  int64      // random number seed
	Wrtr   io.Writer  // where we write to
	Format aln.Format // phylip or fasta
	Name   string     // species names are Name1, Name2, ...
	Nseq   int        // number of sequences
	Len    int        // Length of sequences
	NoGap  bool       // Do not add gaps
	MkErr  bool       // Add an error, by making the last sequence short
}

var protLetters = []byte{'a', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}

// getLetters returns the symbols to pick from. With gaps, we repeat the
// letters so a gap turns up about once in 80 sites.
func getLetters(noGap bool) []byte {
	letters := append([]byte(nil), protLetters...)
	if !noGap {
		letters = append(letters, letters...)
		letters = append(letters, letters...)
		letters = append(letters, common.GapChar)
	}
	return letters
}

// getseq returns a byte slice with a random sequence in it, with some
// spare capacity for white space.
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := 1 + rnd.Intn(len(s)-1) // never first, so the line keeps its start
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace adds white space at random positions, using up the spare
// capacity. We flip a coin. Heads we don't add a newline. Tails we make
// about 1/10 of the spaces newlines. Phylip records cannot be broken
// over lines, so they only get spaces.
func addspace(s []byte, f aln.Format, rnd *rand.Rand) []byte {
	if len(s) < 2 {
		return s
	}
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if f == aln.Fasta && rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	s = addInner(s, nNL, '\n', rnd)
	return s
}

// writeseq takes sequences from a channel, gives each a name and writes
// it. The first write error is kept and later sequences are dropped.
func writeseq(sChan <-chan []byte, args *Args, wg *sync.WaitGroup, err *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *err != nil {
			continue
		}
		s = addspace(s, args.Format, spacernd)
		name := fmt.Sprintf("%s%0*d", args.Name, width, i)
		if args.Format == aln.Fasta {
			_, *err = fmt.Fprintf(args.Wrtr, "%c%s\n%s\n", '>', name, s)
		} else {
			_, *err = fmt.Fprintf(args.Wrtr, "%s    %s\n", name, s)
		}
	}
}

// Main writes a random alignment to args.Wrtr.
func Main(args *Args) error {
	if !args.Format.Valid() {
		return &aln.UnsupportedFormatError{Name: args.Format.String()}
	}
	if args.Nseq < 1 || args.Len < 1 {
		return errors.New("random alignment needs at least one sequence and one site")
	}
	if args.MkErr && args.Len < 2 {
		return errors.New("cannot shorten a sequence of length 1")
	}
	if args.Name == "" {
		args.Name = "s"
	}
	if args.Format == aln.Phylip {
		if _, err := fmt.Fprintf(args.Wrtr, "%d %d\n", args.Nseq, args.Len); err != nil {
			return err
		}
	}
	var wg sync.WaitGroup
	var err error
	letters := getLetters(args.NoGap)
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		s := getseq(args.Len, letters, rnd)
		if args.MkErr && i == args.Nseq-1 {
			s = s[:len(s)-1]
		}
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return err
}
