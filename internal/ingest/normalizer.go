package ingest

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/daehantax/fund-match/internal/models"
)

// RawRow is one parsed CSV row keyed by header name. The same logical field
// may appear under several header spellings depending on which sheet export
// produced the file, so every field is resolved through an alias list.
type RawRow map[string]string

// pickField returns the first non-empty value among the given header aliases.
func pickField(row RawRow, aliases ...string) string {
	for _, alias := range aliases {
		if v := cleanText(row[alias]); v != "" {
			return v
		}
	}
	return ""
}

func pickFieldDefault(row RawRow, fallback string, aliases ...string) string {
	if v := pickField(row, aliases...); v != "" {
		return v
	}
	return fallback
}

// NormalizeGrantRow converts one raw policy-fund row into a GrantPosting.
// Missing fields degrade to documented defaults; a row is never rejected.
// Views is filled with a random placeholder because the source carries no
// real popularity metric.
func NormalizeGrantRow(row RawRow, index int) models.GrantPosting {
	title := pickFieldDefault(row, "제목 없음", "공고명", "title")
	category := pickFieldDefault(row, models.CategoryEtc, "지원분야", "category")

	return models.GrantPosting{
		ID:               pickFieldDefault(row, fmt.Sprintf("grant_%d", index), "번호", "id"),
		Title:            title,
		Department:       pickFieldDefault(row, "관계부처", "소관부처", "department"),
		Agency:           pickField(row, "사업수행기관", "agency"),
		Category:         category,
		StartDate:        pickField(row, "신청시작일자", "startDate"),
		EndDate:          pickField(row, "신청종료일자", "endDate"),
		RegistrationDate: pickField(row, "등록일자", "registrationDate"),
		DetailURL:        pickFieldDefault(row, "#", "공고상세URL", "detailUrl"),
		SupportAmount:    pickField(row, "지원금액", "supportAmount"),
		Views:            rand.Intn(1000),
		Tags:             ClassifyTags(title + " " + category),
	}
}

// NormalizeClientRow converts one raw client-ledger row into a ClientRecord.
// Rows without an id get a generated one so lookups stay keyed.
func NormalizeClientRow(row RawRow) models.ClientRecord {
	return models.ClientRecord{
		ID:            pickFieldDefault(row, uuid.NewString(), "id"),
		CompanyName:   pickField(row, "company_name", "회사명"),
		CEOName:       pickField(row, "ceo_name", "대표자명"),
		BizType:       pickField(row, "biz_type", "기업형태"),
		BizNumber:     pickField(row, "biz_number", "사업자등록번호", "사업자번호"),
		Address:       pickField(row, "address", "주소"),
		AddressDetail: pickField(row, "address_detail", "상세주소"),
		Phone:         pickField(row, "phone", "연락처"),
		BizCategory:   pickField(row, "biz_category", "업종"),
		BizItem:       pickField(row, "biz_item", "종목"),
	}
}
