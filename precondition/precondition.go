package precondition

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/err0r500/go-ldp-server/domain"
)

// Outcome is the result of evaluating the conditional headers
type Outcome uint8

const (
	Proceed Outcome = iota
	NotModified
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotModified:
		return "not-modified"
	case Failed:
		return "failed"
	}
	return "proceed"
}

// Headers holds the raw conditional request headers
type Headers struct {
	IfMatch           string
	IfNoneMatch       string
	IfModifiedSince   string
	IfUnmodifiedSince string
}

// Empty reports whether no conditional header was sent
func (h Headers) Empty() bool {
	return len(h.IfMatch)+len(h.IfNoneMatch)+len(h.IfModifiedSince)+len(h.IfUnmodifiedSince) == 0
}

// Validator is the strong validator pair of a resource state
type Validator struct {
	ETag         string
	LastModified time.Time
}

// NewValidator derives the validators of a resource from its identity,
// modification time and interaction model
func NewValidator(identifier string, modified time.Time, model domain.InteractionModel) Validator {
	h := sha256.New()
	h.Write([]byte(identifier))
	h.Write([]byte{0})
	h.Write([]byte(modified.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{0})
	h.Write([]byte(model.IRI()))
	return Validator{
		ETag:         `"` + hex.EncodeToString(h.Sum(nil)) + `"`,
		LastModified: modified.UTC().Truncate(time.Second),
	}
}

// LastModifiedHeader formats the Last-Modified value
func (v Validator) LastModifiedHeader() string {
	return v.LastModified.Format(http.TimeFormat)
}

func safe(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

func splitTags(header string) []string {
	var tags []string
	for _, v := range strings.Split(header, ",") {
		if v = strings.TrimSpace(v); len(v) > 0 {
			tags = append(tags, v)
		}
	}
	return tags
}

// ifMatch uses the strong comparison; weak tags never match
func (v Validator) ifMatch(header string) bool {
	for _, tag := range splitTags(header) {
		if tag == "*" || tag == v.ETag {
			return true
		}
	}
	return false
}

// ifNoneMatch reports whether any tag matches under the weak comparison
func (v Validator) ifNoneMatch(header string) bool {
	for _, tag := range splitTags(header) {
		if tag == "*" || strings.TrimPrefix(tag, "W/") == v.ETag {
			return true
		}
	}
	return false
}

func parseDate(value string) (time.Time, bool) {
	if len(value) == 0 {
		return time.Time{}, false
	}
	t, err := http.ParseTime(value)
	return t, err == nil
}

// Evaluate applies the conditional headers in the order of RFC 7232 section 6
func (v Validator) Evaluate(method string, h Headers) Outcome {
	if len(h.IfMatch) > 0 {
		if !v.ifMatch(h.IfMatch) {
			return Failed
		}
	} else if since, ok := parseDate(h.IfUnmodifiedSince); ok && v.LastModified.After(since) {
		return Failed
	}

	if len(h.IfNoneMatch) > 0 {
		if v.ifNoneMatch(h.IfNoneMatch) {
			if safe(method) {
				return NotModified
			}
			return Failed
		}
	} else if safe(method) {
		if since, ok := parseDate(h.IfModifiedSince); ok && !v.LastModified.After(since) {
			return NotModified
		}
	}
	return Proceed
}

// EvaluateAbsent applies the conditional headers to a target that does not
// exist yet: If-Match can never hold, If-None-Match always does
func EvaluateAbsent(h Headers) Outcome {
	if len(h.IfMatch) > 0 {
		return Failed
	}
	return Proceed
}

// Status maps an outcome to the response status of the method. PATCH
// reports failed preconditions as 409 Conflict.
func Status(method string, o Outcome) int {
	switch o {
	case NotModified:
		if safe(method) {
			return http.StatusNotModified
		}
		return http.StatusPreconditionFailed
	case Failed:
		if method == http.MethodPatch {
			return http.StatusConflict
		}
		return http.StatusPreconditionFailed
	}
	return 0
}
