// Package constraint checks user-managed graphs against the LDP rules of
// the target interaction model
package constraint

import (
	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
)

var membershipPredicates = map[string]bool{
	constant.LDPMembershipResource:      true,
	constant.LDPHasMemberRelation:       true,
	constant.LDPIsMemberOfRelation:      true,
	constant.LDPInsertedContentRelation: true,
}

// LDP is the default constraint service
type LDP struct{}

func New() LDP {
	return LDP{}
}

func violation(constraint string, t domain.Triple) *domain.ConstraintViolation {
	return &domain.ConstraintViolation{Constraint: constraint, Triple: &t}
}

func cardinality(last *domain.Triple) *domain.ConstraintViolation {
	return &domain.ConstraintViolation{Constraint: constant.GoldInvalidCardinality, Triple: last}
}

// ConstrainedBy returns the first violated rule, or nil when g is valid for
// the interaction model
func (LDP) ConstrainedBy(model domain.InteractionModel, _ string, g *domain.Graph) *domain.ConstraintViolation {
	membership := model == domain.DirectContainer || model == domain.IndirectContainer
	counts := map[string]int{}
	var last *domain.Triple

	for _, t := range g.Sorted() {
		p, ok := t.P.(domain.IRI)
		if !ok {
			return violation(constant.GoldInvalidProperty, t)
		}
		switch {
		case p.Value == constant.LDPContains:
			return violation(constant.GoldInvalidProperty, t)
		case p.Value == constant.RDFType:
			if o, ok := t.O.(domain.IRI); ok {
				if _, ldpType := domain.InteractionModelFromIRI(o.Value); ldpType {
					return violation(constant.GoldInvalidType, t)
				}
			}
		case membershipPredicates[p.Value]:
			if !membership {
				return violation(constant.GoldInvalidProperty, t)
			}
			if _, ok := t.O.(domain.IRI); !ok {
				return violation(constant.GoldInvalidRange, t)
			}
			counts[p.Value]++
			last = &t
		}
	}

	if !membership {
		return nil
	}
	if counts[constant.LDPMembershipResource] != 1 ||
		counts[constant.LDPHasMemberRelation]+counts[constant.LDPIsMemberOfRelation] != 1 {
		return cardinality(last)
	}
	inserted := counts[constant.LDPInsertedContentRelation]
	if (model == domain.IndirectContainer && inserted != 1) || (model == domain.DirectContainer && inserted > 0) {
		return cardinality(last)
	}
	return nil
}
