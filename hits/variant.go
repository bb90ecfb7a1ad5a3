// SPDX-License-Identifier: MIT

package hits

// Variant is the weighting policy of the mutual-reinforcement method.
// The set is closed: use HITS or Demange.
type Variant interface {
	// Name is the report column name of the variant ("hits", "demange").
	Name() string

	// weightContribution is the share of cited entity i's score credited to
	// citing entity j. pubsTarget = P[i], pubsSource = P[j].
	weightContribution(score, portion, pubsTarget, pubsSource float64) float64

	// reduceWeight turns the summed contributions into the weight.
	reduceWeight(sum float64) float64

	// needsCitedEntities reports whether every score must stay non-zero.
	needsCitedEntities() bool
}

// scoreContribution is shared by every variant: the part of citing entity
// j's weight credited to cited entity i.
func scoreContribution(weight, portion, pubsTarget, pubsSource float64) float64 {
	return portion * weight * pubsSource / pubsTarget
}

type hitsVariant struct{}

func (hitsVariant) Name() string { return "hits" }

func (hitsVariant) weightContribution(score, portion, pubsTarget, pubsSource float64) float64 {
	return portion * score * pubsTarget / pubsSource
}

func (hitsVariant) reduceWeight(sum float64) float64 { return sum }

func (hitsVariant) needsCitedEntities() bool { return false }

type demangeVariant struct{}

func (demangeVariant) Name() string { return "demange" }

func (demangeVariant) weightContribution(score, portion, pubsTarget, pubsSource float64) float64 {
	return portion / (score * pubsTarget) * pubsSource
}

func (demangeVariant) reduceWeight(sum float64) float64 { return 1 / sum }

func (demangeVariant) needsCitedEntities() bool { return true }

var (
	// HITS is the standard weighting: a citer is heavy when it cites
	// high-scoring entities.
	HITS Variant = hitsVariant{}

	// Demange is the dual weighting: a citer's weight is the reciprocal of
	// its publication-scaled citation mass over the cited scores.
	Demange Variant = demangeVariant{}
)

// Variants lists the closed variant set in report order.
func Variants() []Variant { return []Variant{HITS, Demange} }

// ByName resolves a variant from its column name.
func ByName(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.Name() == name {
			return v, true
		}
	}

	return nil, false
}
