package sparql

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokWord tokenKind = iota
	tokIRI
	tokBlock
	tokSemicolon
)

type token struct {
	kind tokenKind
	text string
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-' || c == ':'
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// skipString returns the offset just past the string literal starting at i
func skipString(src string, i int) (int, error) {
	q := src[i]
	if strings.HasPrefix(src[i:], strings.Repeat(string(q), 3)) {
		end := strings.Index(src[i+3:], strings.Repeat(string(q), 3))
		if end < 0 {
			return 0, malformed("unterminated string")
		}
		return i + 3 + end + 3, nil
	}
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case q:
			return j + 1, nil
		case '\n':
			return 0, malformed("newline in string")
		}
	}
	return 0, malformed("unterminated string")
}

// iriEnd returns the offset just past an IRI reference starting at i, or -1
// when the '<' does not open one (IRIs hold no whitespace)
func iriEnd(src string, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch {
		case src[j] == '>':
			return j + 1
		case isSpace(src[j]) || src[j] == '<' || src[j] == '"' || src[j] == '{' || src[j] == '}':
			return -1
		}
	}
	return -1
}

func skipComment(src string, i int) int {
	if end := strings.IndexByte(src[i:], '\n'); end >= 0 {
		return i + end + 1
	}
	return len(src)
}

// matchBrace returns the offset of the '}' closing the '{' at i
func matchBrace(src string, i int) (int, error) {
	depth := 0
	for j := i; j < len(src); {
		switch c := src[j]; {
		case c == '"' || c == '\'':
			end, err := skipString(src, j)
			if err != nil {
				return 0, err
			}
			j = end
			continue
		case c == '<':
			if end := iriEnd(src, j); end > 0 {
				j = end
				continue
			}
		case c == '#':
			j = skipComment(src, j)
			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return j, nil
			}
		}
		j++
	}
	return 0, malformed("unbalanced braces")
}

// lex splits an update request into top level tokens; group graph patterns
// and templates are kept as raw blocks
func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '#':
			i = skipComment(src, i)
		case c == ';':
			toks = append(toks, token{tokSemicolon, ";"})
			i++
		case c == '<':
			end := iriEnd(src, i)
			if end < 0 {
				return nil, malformed("unterminated IRI")
			}
			toks = append(toks, token{tokIRI, src[i+1 : end-1]})
			i = end
		case c == '{':
			end, err := matchBrace(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{tokBlock, src[i+1 : end]})
			i = end + 1
		case isWordChar(c):
			j := i
			for j < len(src) && isWordChar(src[j]) {
				j++
			}
			toks = append(toks, token{tokWord, src[i:j]})
			i = j
		default:
			return nil, malformed("unexpected %q", c)
		}
	}
	return toks, nil
}

// unsupportedKeywords may appear in graph patterns but are not evaluated
var unsupportedKeywords = map[string]bool{
	"GRAPH": true, "OPTIONAL": true, "FILTER": true, "UNION": true, "MINUS": true,
	"BIND": true, "VALUES": true, "SERVICE": true, "SELECT": true,
}

// varPrefix marks variables so a block can be read by the Turtle parser
const varPrefix = "urn:x-sparql-var:"

// toTurtle rewrites a block into Turtle triples: variables become
// placeholder IRIs and comments are dropped
func toTurtle(block string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(block); {
		c := block[i]
		switch {
		case c == '"' || c == '\'':
			end, err := skipString(block, i)
			if err != nil {
				return "", err
			}
			b.WriteString(block[i:end])
			i = end
		case c == '<':
			end := iriEnd(block, i)
			if end < 0 {
				return "", fmt.Errorf("%w: expressions are not supported", ErrUnsupported)
			}
			b.WriteString(block[i:end])
			i = end
		case c == '#':
			b.WriteByte('\n')
			i = skipComment(block, i)
		case c == '{' || c == '}':
			return "", fmt.Errorf("%w: nested group patterns", ErrUnsupported)
		case (c == '?' || c == '$') && i+1 < len(block) && isNameChar(block[i+1]):
			j := i + 1
			for j < len(block) && isNameChar(block[j]) {
				j++
			}
			b.WriteString("<" + varPrefix + block[i+1:j] + ">")
			i = j
		case isWordChar(c):
			j := i
			for j < len(block) && isWordChar(block[j]) {
				j++
			}
			word := block[i:j]
			if unsupportedKeywords[strings.ToUpper(word)] {
				return "", fmt.Errorf("%w: %s", ErrUnsupported, word)
			}
			b.WriteString(word)
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	body := strings.TrimSpace(b.String())
	if len(body) > 0 && !strings.HasSuffix(body, ".") {
		body += " ."
	}
	return body, nil
}
