package ingest

import "github.com/daehantax/fund-match/internal/models"

// Hand-authored emergency datasets, returned verbatim when neither the
// published sheet nor the local file yields parseable rows. Non-empty by
// construction so the loader never hands back an empty table.

// FallbackGrants mirrors a representative slice of the bizinfo feed.
var FallbackGrants = []models.GrantPosting{
	{
		ID:               "1",
		Department:       "광주광역시",
		Agency:           "직접수행",
		Category:         models.CategoryEtc,
		Title:            "[광주] 2026년 상반기 지역활성화 펀드 지원사업",
		StartDate:        "2026-02-02",
		EndDate:          "2026-02-12",
		RegistrationDate: "2026-02-04",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            120,
		SupportAmount:    "업체당 5천만원",
	},
	{
		ID:               "2",
		Department:       "조달청",
		Agency:           "한국조달연구원",
		Category:         models.CategoryTechnology,
		Title:            "2026년 공공혁신수요기반 R&D 신규과제 모집공고",
		StartDate:        "2026-02-09",
		EndDate:          "2026-03-03",
		RegistrationDate: "2026-02-04",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            450,
		SupportAmount:    "최대 3억원",
	},
	{
		ID:               "3",
		Department:       "경기도",
		Agency:           "경기대진테크노파크",
		Category:         models.CategoryTechnology,
		Title:            "[경기] 2026년 가구디자인 고도화 및 마케팅 지원사업",
		StartDate:        "2026-02-03",
		EndDate:          "2026-12-31",
		RegistrationDate: "2026-02-04",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            89,
		SupportAmount:    "기업당 1,500만원",
	},
	{
		ID:               "4",
		Department:       "강원특별자치도",
		Agency:           "중소기업중앙회강원지역",
		Category:         models.CategoryDomestic,
		Title:            "[강원] 2026년 우수 중소기업 판로개척 지원사업",
		StartDate:        "2026-02-03",
		EndDate:          "2026-02-26",
		RegistrationDate: "2026-02-04",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            210,
		SupportAmount:    "부스비 80% 지원",
	},
	{
		ID:               "5",
		Department:       "산업통상부",
		Agency:           "한국산업기술진흥원",
		Category:         models.CategoryTechnology,
		Title:            "2026년 중견중소기업상생형 기술개발사업 공고",
		StartDate:        "2026-02-03",
		EndDate:          "2026-03-04",
		RegistrationDate: "2026-02-04",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            1500,
		SupportAmount:    "최대 5억원",
	},
	{
		ID:               "6",
		Department:       "중소벤처기업부",
		Agency:           "중소벤처기업진흥공단",
		Category:         models.CategoryFinance,
		Title:            "2026년도 중소기업 정책자금 융자계획 공고",
		StartDate:        "2026-01-01",
		EndDate:          "2026-12-31",
		RegistrationDate: "2025-12-28",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            5200,
		SupportAmount:    "최대 60억원 융자",
	},
	{
		ID:               "7",
		Department:       "KOTRA",
		Agency:           "KOTRA",
		Category:         models.CategoryExport,
		Title:            "2026년 수출바우처사업 1차 참여기업 모집",
		StartDate:        "2026-01-15",
		EndDate:          "2026-02-28",
		RegistrationDate: "2026-01-01",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            3100,
		SupportAmount:    "3천만원 ~ 1억원 바우처",
	},
	{
		ID:               "8",
		Department:       "부산광역시",
		Agency:           "부산경제진흥원",
		Category:         models.CategoryStartup,
		Title:            "[부산] 2026년 청년창업지원사업 예비창업자 모집",
		StartDate:        "2026-02-10",
		EndDate:          "2026-03-10",
		RegistrationDate: "2026-02-05",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            670,
		SupportAmount:    "사업화자금 2,000만원",
	},
	{
		ID:               "9",
		Department:       "고용노동부",
		Agency:           "근로복지공단",
		Category:         models.CategoryManpower,
		Title:            "2026년 일자리 안정자금 지원사업 공고",
		StartDate:        "2026-01-01",
		EndDate:          "2026-12-31",
		RegistrationDate: "2025-12-20",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            8900,
		SupportAmount:    "인당 월 13만원",
	},
	{
		ID:               "10",
		Department:       "서울시",
		Agency:           "서울신용보증재단",
		Category:         models.CategoryManagement,
		Title:            "[서울] 소상공인 경영개선 컨설팅 지원사업",
		StartDate:        "2026-03-01",
		EndDate:          "2026-06-30",
		RegistrationDate: "2026-02-20",
		DetailURL:        "https://www.bizinfo.go.kr",
		Views:            400,
		SupportAmount:    "전문가 컨설팅 3회",
	},
}

// FallbackClients keeps the BRN lookup testable without a ledger file.
var FallbackClients = []models.ClientRecord{
	{
		ID:            "fallback_1",
		CompanyName:   "테스트용 샘플기업",
		CEOName:       "김테스트",
		BizType:       "법인",
		BizNumber:     "123-45-67890",
		Address:       "서울특별시 강남구 테헤란로",
		AddressDetail: "123번지",
		Phone:         "010-0000-0000",
		BizCategory:   "서비스업",
		BizItem:       "소프트웨어 개발",
	},
}

func fallbackGrantsCopy() []models.GrantPosting {
	out := make([]models.GrantPosting, len(FallbackGrants))
	copy(out, FallbackGrants)
	return out
}

func fallbackClientsCopy() []models.ClientRecord {
	out := make([]models.ClientRecord, len(FallbackClients))
	copy(out, FallbackClients)
	return out
}
