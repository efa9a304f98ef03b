// Command gksdump lists the records of a metafile.
//
//	gksdump [-v] demo.gkdl
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/displaylist"
)

func main() {
	verbose := flag.Bool("v", false, "print record operands")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gksdump [-v] file")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := bufio.NewWriter(os.Stdout)
	n, err := dump(w, f, *verbose)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatalf("record %d: %v", n, err)
	}
}

// dump writes one line per record and returns the number of records read.
func dump(w io.Writer, r io.Reader, verbose bool) (int, error) {
	dr := displaylist.NewReader(r)
	for n := 0; ; n++ {
		rec, err := dr.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		fmt.Fprintf(w, "%5d %-24s %s\n", n, name(rec.Fctid), rec)
		if verbose {
			operands(w, rec)
		}
	}
}

func name(fctid int) string {
	op := gks.Opcode(fctid)
	if !op.Valid() {
		return fmt.Sprintf("?%d", fctid)
	}
	return op.String()
}

func operands(w io.Writer, rec *displaylist.Record) {
	if len(rec.Ints) > 0 {
		fmt.Fprintf(w, "      ints  %v\n", rec.Ints)
	}
	if len(rec.F1) > 0 {
		fmt.Fprintf(w, "      f1    %v\n", rec.F1)
	}
	if len(rec.F2) > 0 {
		fmt.Fprintf(w, "      f2    %v\n", rec.F2)
	}
	if len(rec.Chars) > 0 {
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(rec.Chars)
		if err != nil {
			s = rec.Chars
		}
		fmt.Fprintf(w, "      chars %q\n", s)
	}
}
