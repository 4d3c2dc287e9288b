package handler

//go:generate mockgen -source=handler.go -destination=mocks/company-mocks.go -package=mocks Service

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"normalro/internal/company"
	"normalro/internal/company/handler/mocks"
	dErrors "normalro/pkg/domain-errors"
	"normalro/pkg/testutil"
)

type CompanyHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
	now     time.Time
}

func TestCompanyHandlerSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerSuite))
}

func (s *CompanyHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.now = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *CompanyHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CompanyHandlerSuite) post(body any) *httptest.ResponseRecorder {
	s.T().Helper()
	req := testutil.WithTime(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/anaf/company", body), s.now)
	return testutil.DoRequest(s.router, req)
}

func (s *CompanyHandlerSuite) TestLookup() {
	dante := &company.Company{CUI: "14399840", Name: "DANTE INTERNATIONAL SA", VATRegistered: true}

	s.Run("numeric cui with explicit date", func() {
		s.service.EXPECT().Lookup(gomock.Any(), "14399840", "2023-12-31").Return(dante, nil)

		rr := s.post(map[string]any{"cui": 14399840, "date": "2023-12-31"})

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[LookupResponse](s.T(), rr)
		assert.True(s.T(), resp.Success)
		require.NotNil(s.T(), resp.Data)
		assert.Equal(s.T(), *dante, *resp.Data)
	})

	s.Run("string cui is stripped and date defaults to today", func() {
		s.service.EXPECT().Lookup(gomock.Any(), "14399840", "2024-03-01").Return(dante, nil)

		rr := s.post(map[string]any{"cui": "RO 14399840"})
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("response uses the Romanian field names", func() {
		s.service.EXPECT().Lookup(gomock.Any(), "14399840", "2024-03-01").Return(dante, nil)

		rr := s.post(map[string]any{"cui": "14399840"})
		body := testutil.DecodeJSON(s.T(), rr)
		assert.Equal(s.T(), true, body["success"])
		data, ok := body["data"].(map[string]any)
		require.True(s.T(), ok)
		assert.Equal(s.T(), "DANTE INTERNATIONAL SA", data["denumire"])
		assert.Equal(s.T(), true, data["platitorTVA"])
		assert.Contains(s.T(), data, "nrRegCom")
	})
}

func (s *CompanyHandlerSuite) TestLookup_Validation() {
	cases := []struct {
		name string
		body any
		code string
	}{
		{"missing cui", map[string]any{}, "cui_required"},
		{"null cui", map[string]any{"cui": nil}, "cui_required"},
		{"blank cui", map[string]any{"cui": "   "}, "cui_required"},
		{"no digits", map[string]any{"cui": "RO"}, "invalid_cui"},
		{"too many digits", map[string]any{"cui": "12345678901"}, "invalid_cui"},
		{"negative number", map[string]any{"cui": -5}, "invalid_cui"},
		{"boolean", map[string]any{"cui": true}, "invalid_cui"},
		{"malformed date", map[string]any{"cui": "123", "date": "01.03.2024"}, "invalid_date"},
		{"impossible date", map[string]any{"cui": "123", "date": "2024-02-30"}, "invalid_date"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rr := s.post(tc.body)
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, tc.code)
		})
	}
}

func (s *CompanyHandlerSuite) TestLookup_ServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", dErrors.New(dErrors.CodeCompanyNotFound, "no company"), http.StatusNotFound, "company_not_found"},
		{"service error", dErrors.New(dErrors.CodeANAFServiceError, "bad status"), http.StatusBadGateway, "anaf_service_error"},
		{"timeout", dErrors.New(dErrors.CodeANAFTimeout, "slow"), http.StatusGatewayTimeout, "anaf_timeout"},
		{"connection", dErrors.New(dErrors.CodeANAFConnectionError, "refused"), http.StatusBadGateway, "anaf_connection_error"},
		{"circuit open", dErrors.New(dErrors.CodeANAFUnavailable, "open"), http.StatusServiceUnavailable, "anaf_unavailable"},
		{"untyped error", io.ErrUnexpectedEOF, http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().Lookup(gomock.Any(), "123", "2024-03-01").Return(nil, tc.err)

			rr := s.post(map[string]any{"cui": 123})
			testutil.AssertStatusAndError(s.T(), rr, tc.status, tc.code)
		})
	}
}
