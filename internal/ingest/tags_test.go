package ingest

import (
	"reflect"
	"testing"
)

func TestClassifyTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "employment keyword",
			text: "2026년 청년 채용 지원사업",
			want: []string{TagLabor},
		},
		{
			name: "multiple triggers of one tag yield it once",
			text: "인력 고용 일자리 채용 패키지",
			want: []string{TagLabor},
		},
		{
			name: "multiple tags in rule order",
			text: "스마트공장 구축 및 기술개발 지원",
			want: []string{TagFacility, TagRnD},
		},
		{
			name: "case-insensitive r&d",
			text: "2026 R&D 신규과제 모집",
			want: []string{TagRnD},
		},
		{
			name: "export keyword",
			text: "글로벌 판로개척",
			want: []string{TagMarketing, TagExport},
		},
		{
			name: "loan keywords",
			text: "정책자금 융자계획 공고",
			want: []string{TagLoan},
		},
		{
			name: "no trigger yields nil",
			text: "소상공인 위생교육 안내",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTags(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyTags(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyTagsDeterministic(t *testing.T) {
	text := "수출기업 고용 및 시설 구축, 마케팅과 연구개발 융자 지원"
	first := ClassifyTags(text)
	for i := 0; i < 5; i++ {
		if got := ClassifyTags(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("classification unstable: %v vs %v", got, first)
		}
	}
	if len(first) != len(InterestTags) {
		t.Errorf("expected all %d tags to fire, got %v", len(InterestTags), first)
	}
}
