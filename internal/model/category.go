package model

// OperationCategory is the commercial nature of an order, derived from its
// nop code.
type OperationCategory string

const (
	CategorySale       OperationCategory = "sale"       // regular sale
	CategoryTrousseau  OperationCategory = "trousseau"  // trousseau/kit sale
	CategorySubsidized OperationCategory = "subsidized" // subsidized sale
	CategoryOther      OperationCategory = "other"      // anything else
)

// CodeSets holds the three disjoint nop-code sets that drive classification.
// The sets come from configuration; classification is never stored on a row
// so a code-set change stays consistent everywhere.
type CodeSets struct {
	Sale       map[string]bool
	Trousseau  map[string]bool
	Subsidized map[string]bool
}

// NewCodeSets builds code sets from configured code lists.
func NewCodeSets(sale, trousseau, subsidized []string) CodeSets {
	return CodeSets{
		Sale:       toSet(sale),
		Trousseau:  toSet(trousseau),
		Subsidized: toSet(subsidized),
	}
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

// Classify maps a nop code to its category. Pure and total: codes outside
// every set classify as CategoryOther.
func (s CodeSets) Classify(code string) OperationCategory {
	switch {
	case s.Sale[code]:
		return CategorySale
	case s.Trousseau[code]:
		return CategoryTrousseau
	case s.Subsidized[code]:
		return CategorySubsidized
	default:
		return CategoryOther
	}
}
