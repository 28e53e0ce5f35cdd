package models

// GrantPosting is a single government grant/subsidy announcement loaded from
// the policy-fund CSV. Date fields are kept as raw strings because upstream
// data is not guaranteed to be parseable as calendar dates.
type GrantPosting struct {
	ID               string   `json:"id"`
	Department       string   `json:"department"` // 소관부처
	Agency           string   `json:"agency"`     // 사업수행기관
	Category         string   `json:"category"`   // 지원분야, raw free text, may hold multiple labels
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	RegistrationDate string   `json:"registration_date"`
	DetailURL        string   `json:"detail_url"`
	SupportAmount    string   `json:"support_amount,omitempty"`
	// Views is a synthetic placeholder randomized at load time; the source
	// data carries no popularity metric. Never rank on it.
	Views int      `json:"views"`
	Tags  []string `json:"tags,omitempty"`
}

// ClientRecord is one row of the client ledger used for BRN lookup.
type ClientRecord struct {
	ID            string `json:"id"`
	CompanyName   string `json:"company_name"`
	CEOName       string `json:"ceo_name"`
	BizType       string `json:"biz_type"`   // 법인, 개인
	BizNumber     string `json:"biz_number"` // may contain separator punctuation
	Address       string `json:"address"`
	AddressDetail string `json:"address_detail"`
	Phone         string `json:"phone"`
	BizCategory   string `json:"biz_category"` // 업종
	BizItem       string `json:"biz_item"`     // 종목
}

// Session types.
const (
	SessionClient = "CLIENT"
	SessionGuest  = "GUEST"
)

// UserSession is the ephemeral visitor identity derived from a successful
// client lookup. It is persisted by the frontend, not by this service.
type UserSession struct {
	Type        string `json:"type"` // CLIENT or GUEST
	Identifier  string `json:"identifier"`
	Industry    string `json:"industry,omitempty"`
	Region      string `json:"region,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CEOName     string `json:"ceo_name,omitempty"`
}

// GeneralInquiry is a consultation request from a non-client visitor,
// forwarded to the inquiry webhook.
type GeneralInquiry struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Industry       string `json:"industry"`
	RequestDetails string `json:"request_details"`
}

// BizCategory labels shown as dashboard filter buckets. The posting category
// field itself stays free text; these are the closed match targets.
const (
	CategoryAll        = "전체"
	CategoryFinance    = "금융"
	CategoryTechnology = "기술"
	CategoryManpower   = "인력"
	CategoryExport     = "수출"
	CategoryDomestic   = "내수"
	CategoryStartup    = "창업"
	CategoryManagement = "경영"
	CategoryEtc        = "기타"
)

// BizCategories lists the filterable categories in display order.
var BizCategories = []string{
	CategoryAll, CategoryFinance, CategoryTechnology, CategoryManpower,
	CategoryExport, CategoryDomestic, CategoryStartup, CategoryManagement,
	CategoryEtc,
}

// RegionAll is the sentinel for "no region filter" / unmapped addresses.
// RegionNationwide marks postings open to the whole country.
const (
	RegionAll        = "전체"
	RegionNationwide = "전국"
)

// Regions lists the filterable regions in display order. RegionNationwide is
// a filter choice, never a MapRegion match target.
var Regions = []string{
	RegionNationwide, "서울", "부산", "대구", "인천", "광주", "대전", "울산",
	"세종", "경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}
