// Package dimacs parses the DIMACS CNF text format into the literal vectors
// the cdcl package's Formula is built from.
package dimacs

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cdcl-sat/solver/internal/cdcl"
)

// ErrNotFound is returned when the instance file does not exist. Other
// failures to open the file are returned wrapped, without ErrNotFound.
var ErrNotFound = errors.New("dimacs: instance file not found")

// ErrMalformed is returned when the file's content does not match the CNF
// grammar: no header line, a header whose counts are not integers, a clause
// line missing its terminating 0 or holding a non-integer or misplaced 0
// literal, or fewer clause lines than the header declares.
var ErrMalformed = errors.New("dimacs: malformed CNF")

// Instance is a fully parsed CNF formula: its variable count and its
// clauses, each a slice of nonzero signed literals.
type Instance struct {
	NumVars int
	Clauses [][]cdcl.Literal
}

// Parse reads filename and returns the parsed instance. Comment lines
// starting with 'c', terminator/statistic lines starting with '%' or '0' in
// column 0, and blank lines are ignored. The header line is
// "p cnf <num_variables> <num_clauses>" — its last two whitespace-separated
// tokens are parsed as integers, any tokens before them are ignored. Every
// subsequent non-ignored line encodes exactly one clause: nonzero signed
// integer literals terminated by the literal 0. Parsing stops once the number
// of clauses the header declares has been read; later lines are not read.
func Parse(filename string) (*Instance, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%q", filename)
		}
		return nil, errors.Wrapf(err, "opening %q", filename)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	numVars, numClauses, err := parseHeader(scanner)
	if err != nil {
		return nil, err
	}

	inst := &Instance{NumVars: numVars, Clauses: make([][]cdcl.Literal, 0, numClauses)}

	for len(inst.Clauses) < numClauses {
		line, ok := nextContentLine(scanner)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "expected %d clauses, found %d", numClauses, len(inst.Clauses))
		}
		clause, err := parseClauseLine(line)
		if err != nil {
			return nil, err
		}
		inst.Clauses = append(inst.Clauses, clause)
	}

	return inst, nil
}

// isIgnoredLine reports whether line is a comment, terminator/statistic
// line, or blank — every case the spec says the parser must skip.
func isIgnoredLine(line string) bool {
	if line == "" {
		return true
	}
	switch line[0] {
	case 'c', '%', '0':
		return true
	}
	return false
}

// nextContentLine advances the scanner past ignored lines and returns the
// next one that isn't, or false at EOF.
func nextContentLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if isIgnoredLine(line) {
			continue
		}
		return line, true
	}
	return "", false
}

func parseHeader(scanner *bufio.Scanner) (numVars int, numClauses int, err error) {
	line, ok := nextContentLine(scanner)
	if !ok {
		return 0, 0, errors.Wrap(ErrMalformed, "no header line")
	}

	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "p" {
		return 0, 0, errors.Wrapf(ErrMalformed, "bad header line %q", line)
	}

	last := fields[len(fields)-2:]
	numVars, err = strconv.Atoi(last[0])
	if err != nil {
		return 0, 0, errors.Wrapf(ErrMalformed, "header variable count %q: %s", last[0], err)
	}
	numClauses, err = strconv.Atoi(last[1])
	if err != nil {
		return 0, 0, errors.Wrapf(ErrMalformed, "header clause count %q: %s", last[1], err)
	}
	return numVars, numClauses, nil
}

// parseClauseLine parses one "a b c ... 0" line into a literal slice. The
// terminating 0 is required; its absence is malformed input (spec §6,
// "each clause line must end with 0 or the parser fails").
func parseClauseLine(line string) ([]cdcl.Literal, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, errors.Wrapf(ErrMalformed, "clause line missing terminating 0: %q", line)
	}

	lits := make([]cdcl.Literal, 0, len(fields)-1)
	for _, tok := range fields[:len(fields)-1] {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "literal %q: %s", tok, err)
		}
		if n == 0 {
			return nil, errors.Wrapf(ErrMalformed, "literal 0 appears before end of clause: %q", line)
		}
		lits = append(lits, cdcl.Literal(n))
	}
	return lits, nil
}
