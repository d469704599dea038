package rdfutil

import (
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/encoder"
)

// DefaultProfile is the JSON-LD profile used when the client names none
const DefaultProfile = constant.JSONLDCompacted

func accepts(m MediaType, s encoder.Syntax) bool {
	if m.Wildcard() {
		return m.Matches(s.MediaType())
	}
	return m.Q > 0 && s.Matches(m.String())
}

// SelectSyntax walks the ranked acceptable types against the output
// syntaxes and returns the first match. An empty list selects Turtle. A
// profile on a syntax that takes none is not acceptable.
func SelectSyntax(acceptable AcceptList, profile string) (encoder.Syntax, error) {
	syntax, ok := encoder.OutputSyntaxes[0], len(acceptable) == 0
	for _, m := range acceptable {
		if s, found := firstAccepted(m); found {
			syntax, ok = s, true
			break
		}
	}
	if !ok {
		return 0, ErrNotAcceptable
	}
	if len(profile) > 0 && !syntax.SupportsProfiles() {
		return 0, ErrNotAcceptable
	}
	return syntax, nil
}

func firstAccepted(m MediaType) (encoder.Syntax, bool) {
	for _, s := range encoder.OutputSyntaxes {
		if accepts(m, s) {
			return s, true
		}
	}
	return 0, false
}

// ProfileParam returns the first token of the profile parameter of the
// clause that accepts the syntax, if any.
func ProfileParam(acceptable AcceptList, syntax encoder.Syntax) (string, bool) {
	if !syntax.SupportsProfiles() {
		return "", false
	}
	for _, m := range acceptable {
		if !accepts(m, syntax) {
			continue
		}
		if fields := strings.Fields(m.Param("profile")); len(fields) > 0 {
			return fields[0], true
		}
		return "", false
	}
	return "", false
}

// ExtractProfile returns the profile requested for the syntax, the default
// profile if none was requested, or "" when the syntax takes no profile.
func ExtractProfile(acceptable AcceptList, syntax encoder.Syntax) string {
	if !syntax.SupportsProfiles() {
		return ""
	}
	if p, ok := ProfileParam(acceptable, syntax); ok {
		return p
	}
	return DefaultProfile
}
