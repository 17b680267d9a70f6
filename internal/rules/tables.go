package rules

import "github.com/sobihq/sobi/internal/model"

// Confidence tiers for rule-based classification.
const (
	ConfidenceExactMatch   = 0.95
	ConfidencePartialMatch = 0.85
	ConfidenceKeywordMatch = 0.75
	ConfidenceDefault      = 0.5
)

// Rule maps one trigger string to a category.
type Rule struct {
	Pattern  string
	Category string
}

// MerchantRules maps merchant names to categories. Order matters: the
// first matching entry wins, so the tables are slices rather than maps
// to keep tie-breaking deterministic.
var MerchantRules = []Rule{
	// 식비/카페
	{"스타벅스", model.CategoryCafe},
	{"이디야", model.CategoryCafe},
	{"투썸플레이스", model.CategoryCafe},
	{"투썸", model.CategoryCafe},
	{"빽다방", model.CategoryCafe},
	{"메가커피", model.CategoryCafe},
	{"카페", model.CategoryCafe},
	{"커피", model.CategoryCafe},

	// 식비/외식
	{"맥도날드", model.CategoryDining},
	{"버거킹", model.CategoryDining},
	{"KFC", model.CategoryDining},
	{"롯데리아", model.CategoryDining},
	{"서브웨이", model.CategoryDining},

	// 생활/편의점
	{"GS25", model.CategoryConvenience},
	{"CU", model.CategoryConvenience},
	{"세븐일레븐", model.CategoryConvenience},
	{"미니스톱", model.CategoryConvenience},
	{"이마트24", model.CategoryConvenience},

	// 교통
	{"T-money Transit", model.CategoryTransport},
	{"지하철", model.CategoryTransport},
	{"버스", model.CategoryTransport},
	{"Kakao T", model.CategoryTransport},
	{"택시", model.CategoryTransport},
	{"카카오T", model.CategoryTransport},

	// 온라인구매
	{"쿠팡", model.CategoryOnline},
	{"무신사", model.CategoryOnline},
	{"배달의민족", model.CategoryOnline},
	{"지마켓", model.CategoryOnline},
	{"G마켓", model.CategoryOnline},
	{"네이버페이", model.CategoryOnline},
	{"11번가", model.CategoryOnline},
	{"옥션", model.CategoryOnline},
}

// KeywordRules maps memo keywords to categories. Same ordering
// contract as MerchantRules.
var KeywordRules = []Rule{
	// 편의점 상품
	{"삼각김밥", model.CategoryConvenience},
	{"라면", model.CategoryConvenience},
	{"도시락", model.CategoryConvenience},
	{"컵라면", model.CategoryConvenience},
	{"우유", model.CategoryConvenience},
	{"과자", model.CategoryConvenience},
	{"음료", model.CategoryConvenience},

	// 교통
	{"택시", model.CategoryTransport},
	{"지하철", model.CategoryTransport},
	{"버스", model.CategoryTransport},
	{"주차", model.CategoryTransport},
	{"주유", model.CategoryTransport},

	// 카페
	{"아메리카노", model.CategoryCafe},
	{"카페라떼", model.CategoryCafe},
	{"에스프레소", model.CategoryCafe},

	// 외식
	{"점심", model.CategoryDining},
	{"저녁", model.CategoryDining},
	{"회식", model.CategoryDining},
	{"치킨", model.CategoryDining},
	{"피자", model.CategoryDining},
}
