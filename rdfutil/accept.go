package rdfutil

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNotAcceptable is returned when no representation satisfies the client
var ErrNotAcceptable = errors.New("not acceptable")

// MediaType is one clause of an Accept header
type MediaType struct {
	Type    string
	SubType string
	Q       float32
	Params  map[string]string
}

// AcceptList is the ranked list of clauses of an Accept header, most
// preferred first
type AcceptList []MediaType

// NewMediaType parses a bare "type/subtype" value with q=1
func NewMediaType(mediaType string) MediaType {
	typ, sub, _ := strings.Cut(strings.ToLower(strings.TrimSpace(mediaType)), "/")
	return MediaType{Type: typ, SubType: sub, Q: 1}
}

func (m MediaType) String() string {
	return m.Type + "/" + m.SubType
}

// Matches reports whether the clause accepts the bare media type,
// honouring wildcards. Clauses with q=0 accept nothing.
func (m MediaType) Matches(mediaType string) bool {
	if m.Q <= 0 {
		return false
	}
	typ, sub, _ := strings.Cut(strings.ToLower(mediaType), "/")
	if m.Type == "*" {
		return true
	}
	if m.Type != typ {
		return false
	}
	return m.SubType == "*" || m.SubType == sub
}

// Wildcard reports whether the clause has a * type or subtype
func (m MediaType) Wildcard() bool {
	return m.Type == "*" || m.SubType == "*"
}

// Param returns the value of a media type parameter
func (m MediaType) Param(name string) string {
	return m.Params[name]
}

func specificity(m MediaType) int {
	switch {
	case m.Type == "*":
		return 0
	case m.SubType == "*":
		return 1
	}
	return 2 + len(m.Params)
}

// ParseAccept parses an Accept header into a sorted list of clauses. An
// empty header gives an empty list. Ill-formed clauses or parameters are
// reported as an error.
func ParseAccept(header string) (AcceptList, error) {
	al := AcceptList{}
	if len(strings.TrimSpace(header)) == 0 {
		return al, nil
	}
	for _, clause := range strings.Split(header, ",") {
		clause = strings.TrimSpace(clause)
		if len(clause) == 0 {
			continue
		}
		parts := strings.Split(clause, ";")
		mt := MediaType{Q: 1, Params: map[string]string{}}

		mr := strings.ToLower(strings.TrimSpace(parts[0]))
		if mr == "*" {
			mr = "*/*"
		}
		typ, sub, ok := strings.Cut(mr, "/")
		if !ok || len(typ) == 0 || len(sub) == 0 {
			return nil, fmt.Errorf("invalid media range in Accept: %q", clause)
		}
		mt.Type, mt.SubType = typ, sub

		for _, p := range parts[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter in Accept: %q", p)
			}
			k = strings.ToLower(strings.TrimSpace(k))
			v = strings.Trim(strings.TrimSpace(v), `"`)
			if k == "q" {
				q, err := strconv.ParseFloat(v, 32)
				if err != nil {
					return nil, fmt.Errorf("invalid q value in Accept: %q", p)
				}
				mt.Q = float32(q)
				continue
			}
			mt.Params[k] = v
		}
		al = append(al, mt)
	}

	sort.SliceStable(al, func(i, j int) bool {
		if al[i].Q != al[j].Q {
			return al[i].Q > al[j].Q
		}
		return specificity(al[i]) > specificity(al[j])
	})
	return al, nil
}

// Negotiate returns the first alternative accepted by the highest ranked
// clause.
func (al AcceptList) Negotiate(alternatives ...string) (string, error) {
	if len(alternatives) == 0 {
		return "", errors.New("no alternative content types")
	}
	for _, m := range al {
		for _, a := range alternatives {
			if m.Matches(a) {
				return a, nil
			}
		}
	}
	return "", ErrNotAcceptable
}
