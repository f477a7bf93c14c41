package solver

/*

Techniques

A technique is one human-style deduction rule.  Every
technique implements both a mutating Apply and a read-only
FindStep, and the two are guaranteed to agree: FindStep
returns a step exactly when Apply would report a change on the
same grid, and replaying the step's applications reproduces
the first change Apply makes.  Each implementation keeps that
guarantee the simple way, by deriving both methods from a
single scan routine: Apply runs the scan on the live grid and
keeps going, FindStep runs it on a scratch copy and stops at
the first change.

Scans are deterministic.  Houses are visited in the fixed
AllHouses order and digits and cells in ascending bit order,
so the same grid always yields the same step.

A scan can also discover that the grid admits no solution, for
example five cells sharing four candidates.  Techniques report
that eagerly as a consistency error instead of deducing from
an impossible grid.

*/

// A TechniqueTier is a rough difficulty grade for a technique,
// used to order technique lists and to grade puzzles by the
// hardest technique a solve needed.
type TechniqueTier int

// Constants for the tiers, easiest first.
const (
	TierFundamental TechniqueTier = iota
	TierBasic
	TierIntermediate
	TierUpperIntermediate
	TierExpert
)

// String names the tier.
func (t TechniqueTier) String() string {
	switch t {
	case TierFundamental:
		return "fundamental"
	case TierBasic:
		return "basic"
	case TierIntermediate:
		return "intermediate"
	case TierUpperIntermediate:
		return "upper intermediate"
	case TierExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// A Technique is one deduction rule.
type Technique interface {
	// Name gives the technique's display name.
	Name() string
	// Tier gives the technique's difficulty grade.
	Tier() TechniqueTier
	// FindStep returns the first step the technique would
	// take on the grid, or nil if it has nothing to do.  The
	// grid is not modified.
	FindStep(g *TechniqueGrid) (TechniqueStep, error)
	// Apply performs every deduction the technique can find in
	// one scan, reporting whether any candidates changed.
	Apply(g *TechniqueGrid) (bool, error)
}

// AllTechniques returns the full technique list, ordered
// easiest to hardest.  The order is fixed; solvers and stats
// rely on it.
func AllTechniques() []Technique {
	return []Technique{
		Propagation{},
		HiddenSingle{},
		LockedCandidates{},
		NakedPair{},
		HiddenPair{},
		NakedTriple{},
		HiddenTriple{},
		NakedQuad{},
		HiddenQuad{},
		XWing{},
		YWing{},
		Skyscraper{},
	}
}

// FundamentalTechniques returns just the two techniques every
// solve needs: propagation and hidden singles.
func FundamentalTechniques() []Technique {
	return []Technique{
		Propagation{},
		HiddenSingle{},
	}
}
