package ingest

import (
	"strings"

	"github.com/daehantax/fund-match/internal/models"
)

// MapRegion derives a filterable region from a street address by matching its
// first whitespace-separated token against the region list. 전국 is skipped
// because it is a filter choice, not an address prefix. Unmappable input
// returns 전체 so the visitor starts unfiltered rather than mis-filtered.
func MapRegion(address string) string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return models.RegionAll
	}

	fields := strings.Fields(trimmed)
	firstWord := fields[0]
	firstRunes := []rune(firstWord)

	for _, region := range models.Regions {
		if region == models.RegionNationwide {
			continue
		}
		if strings.Contains(firstWord, region) {
			return region
		}
		// 서울특별시, 경기도 etc. match on the two-character prefix.
		if len(firstRunes) >= 2 && string(firstRunes[:2]) == region {
			return region
		}
	}
	return models.RegionAll
}

// industryRules maps raw 업종 strings onto the closed category list. First
// match wins, so 제조 outranks the broader service buckets.
var industryRules = []struct {
	triggers []string
	category string
}{
	{[]string{"제조"}, models.CategoryTechnology},
	{[]string{"소프트웨어", "정보", "IT"}, models.CategoryTechnology},
	{[]string{"도소매", "유통", "상사"}, models.CategoryDomestic},
	{[]string{"수출", "무역"}, models.CategoryExport},
	{[]string{"건설"}, models.CategoryEtc},
	{[]string{"서비스", "용역"}, models.CategoryEtc},
	{[]string{"부동산업"}, models.CategoryManagement},
}

// MapIndustry coerces a free-text business category into one of the dashboard
// filter categories. Anything unrecognized lands in 기타.
func MapIndustry(raw string) string {
	term := strings.TrimSpace(raw)
	if term == "" {
		return models.CategoryEtc
	}

	for _, rule := range industryRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(term, trigger) {
				return rule.category
			}
		}
	}
	return models.CategoryEtc
}
