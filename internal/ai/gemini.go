// Package ai produces short Korean suitability blurbs for a grant posting
// against a client's industry profile. Advisory only; nothing here feeds back
// into filtering or ranking.
package ai

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/daehantax/fund-match/internal/models"
)

const analysisModel = "gemini-3-flash-preview"

const analysisTimeout = 15 * time.Second

// Every failure path degrades to one of these notices so the UI can render
// the response body unconditionally.
const (
	noticeKeyMissing  = "AI 분석 기능을 사용하려면 API 키가 필요합니다."
	noticeEmptyResult = "분석 결과를 불러올 수 없습니다."
	noticeUnavailable = "현재 AI 분석 서비스 연결이 원활하지 않습니다. 잠시 후 다시 시도해주세요."
)

// Client wraps the Gemini API for suitability analysis. The zero-config case
// (no API key) is a fully supported mode where every analysis returns the
// key-missing notice.
type Client struct {
	genai *genai.Client
}

// NewClient reads GEMINI_API_KEY and connects when it is set. An unset key is
// not an error; the client runs in degraded mode.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		log.Print("[ai] GEMINI_API_KEY is not set, suitability analysis disabled")
		return &Client{}, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{genai: gc}, nil
}

// AnalyzeSuitability asks the model how well a posting fits the client's
// industry. It never returns an error to the caller: any failure becomes a
// human-readable Korean notice, because the dashboard shows the string as-is.
func (c *Client) AnalyzeSuitability(ctx context.Context, grant models.GrantPosting, industry string) string {
	if c.genai == nil {
		return noticeKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	prompt := buildPrompt(grant, industry)
	resp, err := c.genai.Models.GenerateContent(ctx, analysisModel,
		genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[ai] suitability analysis failed: %v", err)
		return noticeUnavailable
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return noticeEmptyResult
	}
	return text
}

func buildPrompt(grant models.GrantPosting, industry string) string {
	var b strings.Builder
	b.WriteString("당신은 대한민국 최고의 정부지원금 전문 컨설턴트입니다.\n\n")
	b.WriteString("[기업 정보]\n")
	fmt.Fprintf(&b, "- 업종: %s\n\n", industry)
	b.WriteString("[지원사업 정보]\n")
	fmt.Fprintf(&b, "- 공고명: %s\n", grant.Title)
	fmt.Fprintf(&b, "- 소관부처: %s\n", grant.Department)
	fmt.Fprintf(&b, "- 수행기관: %s\n", grant.Agency)
	fmt.Fprintf(&b, "- 지원분야: %s\n", grant.Category)
	fmt.Fprintf(&b, "- 신청기간: %s ~ %s\n\n", grant.StartDate, grant.EndDate)
	b.WriteString("위 기업이 이 지원사업에 선정될 가능성과 그 이유를 3줄 이내로 매우 간략하게 분석해주세요.\n")
	b.WriteString("특히 소관부처와 신청기간을 고려하여 시급성이나 지역 적합성을 언급하면 좋습니다.\n")
	b.WriteString("말투는 \"사장님, 이 사업은 ~한 이유로 추천드립니다.\" 처럼 정중하고 전문적인 톤을 사용하세요.\n")
	return b.String()
}
