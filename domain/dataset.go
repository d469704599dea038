package domain

import (
	"iter"
	"time"

	"github.com/err0r500/go-ldp-server/constant"
)

// GraphTag names one of the logical partitions of a resource's quads
type GraphTag uint8

const (
	UserManaged GraphTag = iota
	ServerManaged
	Audit
	AccessControl
)

// GraphTags lists every partition, in a stable order
var GraphTags = [...]GraphTag{UserManaged, ServerManaged, Audit, AccessControl}

var graphTagIRIs = [...]string{
	UserManaged:   constant.GoldPreferUserManaged,
	ServerManaged: constant.GoldPreferServerManaged,
	Audit:         constant.GoldPreferAudit,
	AccessControl: constant.GoldPreferAccessControl,
}

var graphTagNames = [...]string{
	UserManaged:   "user-managed",
	ServerManaged: "server-managed",
	Audit:         "audit",
	AccessControl: "access-control",
}

// IRI returns the Prefer token of the partition
func (g GraphTag) IRI() string {
	return graphTagIRIs[g]
}

func (g GraphTag) String() string {
	return graphTagNames[g]
}

// GraphTagFromIRI maps a Prefer token back to its partition
func GraphTagFromIRI(iri string) (GraphTag, bool) {
	for _, tag := range GraphTags {
		if graphTagIRIs[tag] == iri {
			return tag, true
		}
	}
	return 0, false
}

// Quad is a triple tagged with the partition it belongs to
type Quad struct {
	Triple
	Graph GraphTag
}

// NewQuad creates a Quad object
func NewQuad(g GraphTag, s, p, o Term) Quad {
	return Quad{Triple: NewTriple(s, p, o), Graph: g}
}

// Dataset is the next persisted state of a resource. Once frozen it is
// read-only: further additions are refused.
type Dataset struct {
	graphs   map[GraphTag]map[Triple]struct{}
	frozen   bool
	previous *time.Time
}

// NewDataset creates an empty Dataset
func NewDataset() *Dataset {
	return &Dataset{graphs: make(map[GraphTag]map[Triple]struct{}, len(GraphTags))}
}

// Add inserts a quad; it returns false when the dataset is frozen
func (d *Dataset) Add(q Quad) bool {
	if d.frozen {
		return false
	}
	g, ok := d.graphs[q.Graph]
	if !ok {
		g = make(map[Triple]struct{})
		d.graphs[q.Graph] = g
	}
	g[q.Triple] = struct{}{}
	return true
}

// AddTriple inserts a triple into the given partition
func (d *Dataset) AddTriple(tag GraphTag, t Triple) bool {
	return d.Add(Quad{Triple: t, Graph: tag})
}

// AddAll inserts every triple of seq into the given partition
func (d *Dataset) AddAll(tag GraphTag, seq iter.Seq[Triple]) {
	for t := range seq {
		d.AddTriple(tag, t)
	}
}

// DerivedFrom records the modification time of the snapshot the dataset was
// built from; the zero time stands for an absent resource. The store only
// saves the dataset while that snapshot is still current.
func (d *Dataset) DerivedFrom(modified time.Time) {
	if !d.frozen {
		d.previous = &modified
	}
}

// Previous returns the time recorded by DerivedFrom, if any
func (d *Dataset) Previous() (time.Time, bool) {
	if d.previous == nil {
		return time.Time{}, false
	}
	return *d.previous, true
}

// Freeze makes the dataset read-only
func (d *Dataset) Freeze() {
	d.frozen = true
}

func (d *Dataset) Frozen() bool {
	return d.frozen
}

// Len returns the number of quads across all partitions
func (d *Dataset) Len() int {
	n := 0
	for _, g := range d.graphs {
		n += len(g)
	}
	return n
}

// LenGraph returns the number of quads in one partition
func (d *Dataset) LenGraph(tag GraphTag) int {
	return len(d.graphs[tag])
}

// Contains reports whether the quad is present
func (d *Dataset) Contains(q Quad) bool {
	_, ok := d.graphs[q.Graph][q.Triple]
	return ok
}

// Graph iterates over the triples of one partition
func (d *Dataset) Graph(tag GraphTag) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for t := range d.graphs[tag] {
			if !yield(t) {
				return
			}
		}
	}
}

// Quads iterates over every quad, partition by partition
func (d *Dataset) Quads() iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		for _, tag := range GraphTags {
			for t := range d.graphs[tag] {
				if !yield(Quad{Triple: t, Graph: tag}) {
					return
				}
			}
		}
	}
}
