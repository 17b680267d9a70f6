package model

// Spending categories assigned by the rule engine and the fallback
// classifier. The set is open: user edits may introduce labels outside
// this list, but everything the engine produces is drawn from here.
const (
	CategoryCafe        = "식비/카페"
	CategoryDining      = "식비/외식"
	CategoryConvenience = "생활/편의점"
	CategoryTransport   = "교통"
	CategoryOnline      = "온라인구매"
	CategoryEducation   = "교육"
	CategoryHealthcare  = "의료/건강"
	CategoryLeisure     = "문화/여가"

	// CategoryOther is the catch-all assigned when no rule matches.
	CategoryOther = "기타"

	// CategoryUnclassified labels transactions that never went through
	// classification at all. Distinct from CategoryOther, which is an
	// explicit classification outcome.
	CategoryUnclassified = "미분류"
)
