package domain

import (
	"iter"
	"time"

	"github.com/err0r500/go-ldp-server/constant"
)

// BinaryMetadata describes the content of a NonRDFSource
type BinaryMetadata struct {
	Location  string
	MediaType string
	Size      int64
}

// Resource is a read-only snapshot of a persisted resource, or of one of its
// historical versions when IsMemento is set.
type Resource struct {
	Identifier       string
	InteractionModel InteractionModel
	Modified         time.Time
	Types            []string
	Binary           *BinaryMetadata
	Mementos         []time.Time
	IsMemento        bool

	quads []Quad
}

// NewResource builds a snapshot over the given quads
func NewResource(identifier string, model InteractionModel, modified time.Time, quads []Quad) *Resource {
	return &Resource{
		Identifier:       identifier,
		InteractionModel: model,
		Modified:         modified,
		quads:            quads,
	}
}

// Stream iterates over every quad of the resource
func (r *Resource) Stream() iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		for _, q := range r.quads {
			if !yield(q) {
				return
			}
		}
	}
}

// StreamGraph iterates over the triples of one partition
func (r *Resource) StreamGraph(tag GraphTag) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for _, q := range r.quads {
			if q.Graph == tag && !yield(q.Triple) {
				return
			}
		}
	}
}

// IsDeleted reports whether the resource carries the tombstone type
func (r *Resource) IsDeleted() bool {
	for _, t := range r.Types {
		if t == constant.GoldDeletedResource {
			return true
		}
	}
	return false
}

func (r *Resource) HasMementos() bool {
	return len(r.Mementos) > 0
}
