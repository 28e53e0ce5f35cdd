package api

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daehantax/fund-match/internal/ai"
	"github.com/daehantax/fund-match/internal/auth"
	"github.com/daehantax/fund-match/internal/ingest"
	"github.com/daehantax/fund-match/internal/inquiry"
	"github.com/daehantax/fund-match/internal/models"
	"github.com/daehantax/fund-match/internal/query"
)

type Server struct {
	Loader      *ingest.Loader
	AuthService *auth.Service
	AI          *ai.Client
	Inquiries   *inquiry.Submitter
	Echo        *echo.Echo
}

var (
	adminSecretOnce    sync.Once
	adminSecretRuntime string
	adminSecretErr     error
)

func NewServer(loader *ingest.Loader, aiClient *ai.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Admin-Secret"},
	}))

	s := &Server{
		Loader:      loader,
		AuthService: auth.NewService(loader),
		AI:          aiClient,
		Inquiries:   inquiry.NewSubmitter(),
		Echo:        e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.POST("/auth/verify", s.handleVerify)
	api.GET("/session", s.handleSession)
	api.GET("/grants", s.handleListGrants)
	api.GET("/grants/:id", s.handleGetGrant)
	api.POST("/grants/:id/analyze", s.handleAnalyzeGrant)
	api.POST("/inquiries", s.handleSubmitInquiry)
	api.GET("/stats", s.handleStats)

	admin := api.Group("/admin")
	admin.Use(s.adminMiddleware)
	admin.POST("/reload", s.handleReload)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

type verifyRequest struct {
	BizNumber string `json:"biz_number"`
}

type verifyResponse struct {
	Token   string              `json:"token"`
	Session *models.UserSession `json:"session"`
}

func (s *Server) handleVerify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.BizNumber) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "biz_number is required"})
	}

	session, err := s.AuthService.Verify(c.Request().Context(), req.BizNumber)
	if err != nil {
		if errors.Is(err, auth.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "등록된 거래처가 아닙니다. 사업자등록번호를 확인해주세요."})
		}
		c.Logger().Errorf("Client verification failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	token, err := auth.IssueToken(session)
	if err != nil {
		c.Logger().Errorf("Failed to issue session token: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, verifyResponse{Token: token, Session: session})
}

// handleSession rehydrates a stored token into a session, so a returning
// visitor skips re-entering their registration number.
func (s *Server) handleSession(c echo.Context) error {
	session, err := sessionFromRequest(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing session token"})
	}
	return c.JSON(http.StatusOK, session)
}

func sessionFromRequest(c echo.Context) (*models.UserSession, error) {
	header := c.Request().Header.Get("Authorization")
	if len(header) <= 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	return auth.ParseToken(header[7:])
}

func (s *Server) handleListGrants(c echo.Context) error {
	grants, err := s.Loader.LoadGrants(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to load grants: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	criteria := query.Criteria{
		Category:      c.QueryParam("category"),
		Region:        c.QueryParam("region"),
		Query:         strings.TrimSpace(c.QueryParam("q")),
		FavoritesOnly: c.QueryParam("favorites_only") == "true",
	}
	if v := c.QueryParam("interests"); v != "" {
		criteria.Interests = splitCSV(v)
	}
	if v := c.QueryParam("favorites"); v != "" {
		criteria.Favorites = splitCSV(v)
	}

	res := query.Run(grants, criteria)
	return c.JSON(http.StatusOK, listGrantsResponse{
		Grants:      res.Grants,
		Total:       len(res.Grants),
		Recommended: res.Recommended,
		// Badge counts cover the whole table so they stay stable while the
		// visitor narrows filters.
		CategoryCounts: query.CategoryCounts(grants),
		RegionCounts:   query.RegionCounts(grants),
	})
}

type listGrantsResponse struct {
	Grants         []models.GrantPosting `json:"grants"`
	Total          int                   `json:"total"`
	Recommended    bool                  `json:"recommended"`
	CategoryCounts map[string]int        `json:"category_counts"`
	RegionCounts   map[string]int        `json:"region_counts"`
}

func (s *Server) handleGetGrant(c echo.Context) error {
	grants, err := s.Loader.LoadGrants(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to load grants: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	id := c.Param("id")
	for _, g := range grants {
		if g.ID == id {
			return c.JSON(http.StatusOK, g)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
}

type analyzeRequest struct {
	Industry string `json:"industry"`
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
}

// handleAnalyzeGrant runs the AI suitability blurb for one posting. Industry
// comes from the caller's session when a token is presented, else from the
// request body, else the catch-all bucket.
func (s *Server) handleAnalyzeGrant(c echo.Context) error {
	grants, err := s.Loader.LoadGrants(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to load grants: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	id := c.Param("id")
	var grant *models.GrantPosting
	for i := range grants {
		if grants[i].ID == id {
			grant = &grants[i]
			break
		}
	}
	if grant == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	industry := strings.TrimSpace(req.Industry)
	if session, err := sessionFromRequest(c); err == nil && session.Industry != "" {
		industry = session.Industry
	}
	if industry == "" {
		industry = models.CategoryEtc
	}

	analysis := s.AI.AnalyzeSuitability(c.Request().Context(), *grant, industry)
	return c.JSON(http.StatusOK, analyzeResponse{Analysis: analysis})
}

func (s *Server) handleSubmitInquiry(c echo.Context) error {
	var inq models.GeneralInquiry
	if err := c.Bind(&inq); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if strings.TrimSpace(inq.Name) == "" || strings.TrimSpace(inq.Contact) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and contact are required"})
	}

	receipt, err := s.Inquiries.Submit(c.Request().Context(), inq)
	if err != nil {
		c.Logger().Errorf("Inquiry delivery failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "문의 접수에 실패했습니다. 잠시 후 다시 시도해주세요."})
	}
	return c.JSON(http.StatusAccepted, receipt)
}

func (s *Server) handleStats(c echo.Context) error {
	grants, err := s.Loader.LoadGrants(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to load grants: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":      len(grants),
		"categories": query.CategoryCounts(grants),
		"regions":    query.RegionCounts(grants),
		"tags":       query.TagCounts(grants),
	})
}

func (s *Server) handleReload(c echo.Context) error {
	s.Loader.Invalidate()

	ctx := c.Request().Context()
	grants, err := s.Loader.LoadGrants(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	clients, err := s.Loader.LoadClients(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Reload complete",
		"grants":  len(grants),
		"clients": len(clients),
	})
}

// splitCSV splits a comma-separated query parameter into trimmed non-empty strings.
func splitCSV(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret, err := adminSecret()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server admin configuration error"})
		}

		// Check X-Admin-Secret header or Bearer token
		authHeader := c.Request().Header.Get("Authorization")
		adminHeader := c.Request().Header.Get("X-Admin-Secret")

		if adminHeader == secret {
			return next(c)
		}
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			if authHeader[7:] == secret {
				return next(c)
			}
		}

		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized admin access"})
	}
}

func adminSecret() (string, error) {
	adminSecretOnce.Do(func() {
		secret := strings.TrimSpace(os.Getenv("ADMIN_SECRET"))
		if secret != "" {
			adminSecretRuntime = secret
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			adminSecretErr = fmt.Errorf("failed to generate ADMIN_SECRET fallback: %w", err)
			return
		}

		adminSecretRuntime = base64.RawURLEncoding.EncodeToString(buf)
		log.Print("ADMIN_SECRET is not set; using ephemeral in-memory fallback secret")
	})

	if adminSecretErr != nil {
		return "", adminSecretErr
	}
	if adminSecretRuntime == "" {
		return "", fmt.Errorf("admin secret unavailable")
	}

	return adminSecretRuntime, nil
}
