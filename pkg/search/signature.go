package search

import "strings"

// BuildSignature returns prefix + infix + "(" + args + ")". The argument list
// is not validated; a malformed one simply never matches.
func BuildSignature(prefix, infix, args string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(infix) + len(args) + 2)
	b.WriteString(prefix)
	b.WriteString(infix)
	b.WriteByte('(')
	b.WriteString(args)
	b.WriteByte(')')
	return b.String()
}

// template is a signature buffer whose infix region is rewritten in place on
// every probe.
type template struct {
	buf   []byte
	infix []byte
}

func newTemplate(prefix, args string, infixLen int) *template {
	buf := []byte(BuildSignature(prefix, strings.Repeat("_", infixLen), args))
	return &template{
		buf:   buf,
		infix: buf[len(prefix) : len(prefix)+infixLen],
	}
}

// set rewrites the infix for index and returns the full signature bytes.
func (t *template) set(index uint64, a *Alphabet) []byte {
	decodeInto(t.infix, index, a)
	return t.buf
}
