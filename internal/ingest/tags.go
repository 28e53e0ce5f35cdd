package ingest

import "strings"

// Interest tags shown as quick filters on the dashboard. Labels carry their
// emoji prefix because the stored tag string IS the display string; filter
// matching compares these labels verbatim.
const (
	TagLabor     = "💰 인건비/고용"
	TagFacility  = "🏭 시설/기계구입"
	TagMarketing = "📢 마케팅/홍보"
	TagRnD       = "🧪 기술개발(R&D)"
	TagExport    = "🚢 수출/해외진출"
	TagLoan      = "💵 저금리 대출"
)

// InterestTags lists the classifiable tags in display order.
var InterestTags = []string{
	TagLabor, TagFacility, TagMarketing, TagRnD, TagExport, TagLoan,
}

// tagRules pairs each tag with its trigger keywords. Rules are evaluated in
// order so the resulting tag slice is stable for identical input.
var tagRules = []struct {
	tag      string
	triggers []string
}{
	{TagLabor, []string{"인력", "고용", "일자리", "채용", "청년"}},
	{TagFacility, []string{"시설", "기계", "장비", "구축", "스마트공장"}},
	{TagMarketing, []string{"마케팅", "홍보", "판로", "전시회", "입점"}},
	{TagRnD, []string{"기술", "연구", "개발", "r&d", "특허"}},
	{TagExport, []string{"수출", "해외", "무역", "글로벌"}},
	{TagLoan, []string{"융자", "대출", "보증", "금융", "운전자금"}},
}

// ClassifyTags derives interest tags from free text, normally the posting
// title concatenated with its raw category. A tag appears at most once no
// matter how many of its triggers fire; text matching none yields nil.
func ClassifyTags(text string) []string {
	lowered := strings.ToLower(text)

	var tags []string
	for _, rule := range tagRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}
