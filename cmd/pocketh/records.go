package main

import (
	"fmt"
	"strings"

	"github.com/luxfi/pocketh/pkg/search"
)

type accountRecord struct {
	PrivateKey string `json:"private_key,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`
	Address    string `json:"address"`
	File       string `json:"file,omitempty"`
}

func (r accountRecord) Text() string {
	var b strings.Builder
	if r.PrivateKey != "" {
		fmt.Fprintf(&b, "private key: %s\n", r.PrivateKey)
	}
	if r.PublicKey != "" {
		fmt.Fprintf(&b, "public key: %s\n", r.PublicKey)
	}
	fmt.Fprintf(&b, "addr: %s", r.Address)
	if r.File != "" {
		fmt.Fprintf(&b, "\nsealed to: %s", r.File)
	}
	return b.String()
}

type mnemonicRecord struct {
	Mnemonic string `json:"mnemonic"`
}

func (r mnemonicRecord) Text() string {
	return r.Mnemonic
}

type conversionRecord struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Unit   string `json:"unit,omitempty"`
}

func (r conversionRecord) Text() string {
	return r.Output
}

type hashRecord struct {
	Input string `json:"input"`
	Hash  string `json:"hash"`
}

func (r hashRecord) Text() string {
	return r.Hash
}

type selectorRecord struct {
	Signature string `json:"signature"`
	Selector  string `json:"selector"`
}

func (r selectorRecord) Text() string {
	return fmt.Sprintf("%s %s", r.Selector, r.Signature)
}

type collideRecord struct {
	Status    string `json:"status"`
	Target    string `json:"target"`
	Signature string `json:"signature,omitempty"`
	Infix     string `json:"infix,omitempty"`
	Index     uint64 `json:"index"`
	Space     uint64 `json:"space"`
	Probes    uint64 `json:"probes"`
}

func newCollideRecord(target string, out search.Outcome) collideRecord {
	rec := collideRecord{
		Status: out.Status.String(),
		Target: target,
		Space:  out.Space,
		Probes: out.Probes,
	}
	if m := out.Match; m != nil {
		rec.Signature = m.Signature
		rec.Infix = m.Infix
		rec.Index = m.Index
	}
	return rec
}

func (r collideRecord) Text() string {
	if r.Signature == "" {
		return fmt.Sprintf("not found: no signature with selector %s among %d candidates", r.Target, r.Space)
	}
	return r.Signature
}
