package search

import (
	"fmt"

	"github.com/luxfi/pocketh/pkg/selector"
)

// Query describes one search: find an infix of length InfixLen over Alphabet
// such that selector(Prefix + infix + "(" + Args + ")") == Target.
type Query struct {
	Target   selector.Selector
	Prefix   string
	Args     string
	InfixLen int
	// Alphabet defaults to DefaultAlphabet when nil.
	Alphabet *Alphabet
}

// TargetFromSignature returns the selector of a known signature, for use as
// Query.Target.
func TargetFromSignature(signature string) selector.Selector {
	return selector.Of(signature)
}

// ParseTarget parses a hex selector for use as Query.Target.
func ParseTarget(s string) (selector.Selector, error) {
	return selector.Parse(s)
}

func (s Query) alphabet() *Alphabet {
	if s.Alphabet == nil {
		return DefaultAlphabet()
	}
	return s.Alphabet
}

// Space validates s and returns the size of its index space.
func (s Query) Space() (uint64, error) {
	total, err := SpaceSize(s.alphabet(), s.InfixLen)
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return total, nil
}

// Candidate is one point of the search space.
type Candidate struct {
	Index     uint64            `json:"index"`
	Infix     string            `json:"infix"`
	Signature string            `json:"signature"`
	Selector  selector.Selector `json:"selector"`
}

// Status is the terminal state of a search.
type Status int

const (
	StatusFound Status = iota + 1
	StatusExhausted
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the single result of a search.
type Outcome struct {
	Status Status
	// Match is set iff Status is StatusFound.
	Match *Candidate
	// Err is set iff Status is StatusError.
	Err error
	// Space is K^L; zero if it couldn't be computed.
	Space uint64
	// Probes counts the candidates hashed across all workers.
	Probes uint64
}

// Found reports whether the search produced a match.
func (o Outcome) Found() bool {
	return o.Status == StatusFound
}
