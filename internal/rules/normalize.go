package rules

import "strings"

// branchSuffixes are trailing location tokens that card statements
// append to merchant names. Order is part of the matching contract:
// "점" precedes "지점", so a name ending in " 지점" keeps a residual
// syllable and resolves as a partial match rather than an exact one.
var branchSuffixes = []string{"점", "지점", "매장", "스토어", "store"}

// NormalizeMerchant canonicalizes a merchant name for comparison only;
// the raw name is what gets stored and displayed.
//
// Steps: trim, lower-case, then strip at most one trailing branch
// suffix. The strip is not recursive: "강남지점" loses "지점", not
// every suffix it happens to end with afterwards.
func NormalizeMerchant(merchant string) string {
	normalized := strings.ToLower(strings.TrimSpace(merchant))

	for _, suffix := range branchSuffixes {
		if strings.HasSuffix(normalized, suffix) {
			normalized = strings.TrimSpace(strings.TrimSuffix(normalized, suffix))
			break
		}
	}

	return normalized
}
