package query

import (
	"testing"

	"github.com/daehantax/fund-match/internal/ingest"
	"github.com/daehantax/fund-match/internal/models"
)

func fixtureGrants() []models.GrantPosting {
	return []models.GrantPosting{
		{ID: "1", Title: "[서울] 청년창업 지원사업", Department: "서울시", Agency: "서울산업진흥원", Category: "창업", Tags: []string{ingest.TagLabor}},
		{ID: "2", Title: "정책자금 융자계획", Department: "중소벤처기업부", Agency: "중소벤처기업진흥공단", Category: "금융", Tags: []string{ingest.TagLoan}},
		{ID: "3", Title: "기술개발 신규과제", Department: "경기도", Agency: "경기테크노파크", Category: "기술", Tags: []string{ingest.TagRnD}},
		{ID: "4", Title: "전국 일자리 안정자금", Department: "고용노동부", Agency: "근로복지공단", Category: "인력", Tags: []string{ingest.TagLabor}},
		{ID: "5", Title: "소상공인 위생교육", Department: "식약처", Agency: "", Category: "기타"},
	}
}

func ids(grants []models.GrantPosting) []string {
	out := make([]string, len(grants))
	for i, g := range grants {
		out[i] = g.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.GrantPosting, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestRunZeroCriteriaMatchesAll(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{})
	assertIDs(t, res.Grants, "1", "2", "3", "4", "5")
	if res.Recommended {
		t.Error("full table must not be flagged as recommendation")
	}
}

func TestRunCategoryFilter(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Category: "금융"})
	assertIDs(t, res.Grants, "2")
	if res.Recommended {
		t.Error("direct match must not be flagged as recommendation")
	}
}

func TestRunCategoryAllSentinel(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Category: models.CategoryAll})
	assertIDs(t, res.Grants, "1", "2", "3", "4", "5")
}

func TestRunRegionFilter(t *testing.T) {
	// Region matches department, title or agency mentions.
	res := Run(fixtureGrants(), Criteria{Region: "서울"})
	assertIDs(t, res.Grants, "1")

	res = Run(fixtureGrants(), Criteria{Region: "경기"})
	assertIDs(t, res.Grants, "3")
}

func TestRunRegionNationwidePassesAll(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Region: models.RegionNationwide})
	assertIDs(t, res.Grants, "1", "2", "3", "4", "5")
}

func TestRunTextQuery(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Query: "융자"})
	assertIDs(t, res.Grants, "2")

	// Query also hits department and agency names.
	res = Run(fixtureGrants(), Criteria{Query: "근로복지공단"})
	assertIDs(t, res.Grants, "4")
}

func TestRunInterestFilter(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Interests: []string{ingest.TagLabor}})
	// Untagged posting 5 is excluded once any interest is active.
	assertIDs(t, res.Grants, "1", "4")
}

func TestRunStagesIntersect(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{
		Interests: []string{ingest.TagLabor},
		Category:  "창업",
		Region:    "서울",
		Query:     "청년",
	})
	assertIDs(t, res.Grants, "1")
}

func TestRunFavoritesOnlyShortCircuits(t *testing.T) {
	// Category and region are ignored in the favorites view.
	res := Run(fixtureGrants(), Criteria{
		FavoritesOnly: true,
		Favorites:     []string{"2", "3"},
		Category:      "창업",
		Region:        "서울",
	})
	assertIDs(t, res.Grants, "2", "3")
	if res.Recommended {
		t.Error("favorites view must not be flagged as recommendation")
	}
}

func TestRunFavoritesOnlyComposesWithInterests(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{
		FavoritesOnly: true,
		Favorites:     []string{"2", "3"},
		Interests:     []string{ingest.TagLoan},
	})
	assertIDs(t, res.Grants, "2")
}

func TestRunEmptyFavoritesStaysEmpty(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{FavoritesOnly: true})
	if len(res.Grants) != 0 {
		t.Errorf("expected empty favorites view, got %v", ids(res.Grants))
	}
	if res.Recommended {
		t.Error("empty favorites view must not trigger the recommendation fallback")
	}
}

func TestRunTextMissStaysEmpty(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Query: "존재하지않는검색어"})
	if len(res.Grants) != 0 {
		t.Errorf("expected empty search result, got %v", ids(res.Grants))
	}
	if res.Recommended {
		t.Error("free-text miss must stay an honest empty result")
	}
}

func TestRunRegionMissRecommendsRelaxedMatch(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Region: "제주"})
	if !res.Recommended {
		t.Fatal("expected recommendation fallback for region miss")
	}
	// Relaxed region accepts nationwide signals: the small-business ministry
	// posting and anything mentioning 전국 in the department.
	assertIDs(t, res.Grants, "2")
}

func TestRunRecommendationKeepsCategory(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Category: "금융", Region: "제주"})
	if !res.Recommended {
		t.Fatal("expected recommendation fallback")
	}
	assertIDs(t, res.Grants, "2")
}

func TestRunRecommendationFallsBackToLeadingRows(t *testing.T) {
	res := Run(fixtureGrants(), Criteria{Category: "수출", Region: "제주"})
	if !res.Recommended {
		t.Fatal("expected recommendation fallback")
	}
	// Even the relaxed match is empty, so the leading rows are shown.
	assertIDs(t, res.Grants, "1", "2", "3", "4", "5")
}

func TestRunEmptyTable(t *testing.T) {
	res := Run(nil, Criteria{Region: "제주"})
	if len(res.Grants) != 0 || res.Recommended {
		t.Errorf("empty table must yield an empty non-recommended result, got %+v", res)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	grants := fixtureGrants()
	criteria := Criteria{Category: "금융", Region: "제주", Interests: []string{ingest.TagLoan}}

	first := Run(grants, criteria)
	for i := 0; i < 3; i++ {
		again := Run(grants, criteria)
		if again.Recommended != first.Recommended {
			t.Fatal("recommended flag unstable across identical runs")
		}
		assertIDs(t, again.Grants, ids(first.Grants)...)
	}
}

func TestTagCounts(t *testing.T) {
	counts := TagCounts(fixtureGrants())
	if counts[ingest.TagLabor] != 2 {
		t.Errorf("expected 2 labor-tagged postings, got %d", counts[ingest.TagLabor])
	}
	if counts[ingest.TagLoan] != 1 || counts[ingest.TagExport] != 0 {
		t.Errorf("unexpected tag counts %v", counts)
	}
}

func TestCategoryCounts(t *testing.T) {
	counts := CategoryCounts(fixtureGrants())
	if counts[models.CategoryAll] != 5 {
		t.Errorf("expected 전체 to equal table size, got %d", counts[models.CategoryAll])
	}
	if counts["금융"] != 1 || counts["기술"] != 1 || counts["수출"] != 0 {
		t.Errorf("unexpected bucket counts %v", counts)
	}
}

func TestRegionCounts(t *testing.T) {
	counts := RegionCounts(fixtureGrants())
	if counts[models.RegionNationwide] != 5 {
		t.Errorf("expected 전국 to equal table size, got %d", counts[models.RegionNationwide])
	}
	if counts["서울"] != 1 || counts["경기"] != 1 || counts["제주"] != 0 {
		t.Errorf("unexpected region counts %v", counts)
	}
}
