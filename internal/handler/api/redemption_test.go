//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"membership-portal/internal/handler/api"
	resdto "membership-portal/internal/handler/dto/response"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/usecase/commands"
	"membership-portal/tests/common/httptest"
	commandsmock "membership-portal/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	handler      *api.RedemptionHandler
	memberID     uuid.UUID
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.memberID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands)

	// Mock middleware behavior: authenticated member on generate-qr only
	s.router.POST("/campaigns/:id/generate-qr", func(c *gin.Context) {
		c.Set("member_id", s.memberID)
		s.handler.GenerateQR(c)
	})
	s.router.GET("/verify-qr/:qr_token", s.handler.VerifyQR)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func (s *RedemptionHandlerTestSuite) TestGenerateQR() {
	campaignID := uuid.New()
	url := "/campaigns/" + campaignID.String() + "/generate-qr"

	s.Run("success: returns token and expiry", func() {
		expiresAt := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), s.memberID, campaignID).
			Return(&commands.IssuedToken{Token: "b3BhcXVlLXRva2Vu", ExpiresAt: expiresAt}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.GenerateQRResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("b3BhcXVlLXRva2Vu", response.QRToken)
		s.True(expiresAt.Equal(response.ExpiresAt))
	})

	s.Run("error: 403 when dues are not current", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), s.memberID, campaignID).
			Return(nil, commands.ErrDuesNotCurrent)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "dues are not current")
	})

	s.Run("error: 404 for unknown campaign", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), s.memberID, campaignID).
			Return(nil, commands.ErrCampaignNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})

	s.Run("error: 410 for expired campaign", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), s.memberID, campaignID).
			Return(nil, commands.ErrCampaignExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "expired")
	})

	s.Run("error: 400 for malformed campaign id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campaigns/not-a-uuid/generate-qr", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RedemptionHandlerTestSuite) TestVerifyQR() {
	url := "/verify-qr/b3BhcXVlLXRva2Vu"

	photo := "https://cdn.example.com/photos/ayse.jpg"
	validResult := &commands.VerificationResult{
		Valid: true,
		Member: &commands.VerifiedMember{
			Name:     "Ayse",
			Surname:  "Yilmaz",
			Username: "ayse.yilmaz",
			Photo:    &photo,
		},
		Campaign: &commands.VerifiedCampaign{
			Title:   "Coffee discount",
			Company: "Cafe Corner",
		},
	}

	s.Run("success: valid token returns member and campaign", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "b3BhcXVlLXRva2Vu").Return(validResult, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.VerifyQRResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Require().NotNil(response.Member)
		s.Equal("Ayse", response.Member.Name)
		s.Require().NotNil(response.Campaign)
		s.Equal("Cafe Corner", response.Campaign.Company)
	})

	s.Run("verdict payload never leaks ledger fields", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "b3BhcXVlLXRva2Vu").Return(validResult, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var raw map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		memberPayload, ok := raw["member"].(map[string]any)
		s.Require().True(ok)
		for _, forbidden := range []string{"iban", "amount", "payment_date", "is_paid", "id"} {
			s.NotContains(memberPayload, forbidden)
		}
	})

	s.Run("business rejections still answer 200", func() {
		rejections := []string{
			commands.ReasonTokenNotFound,
			commands.ReasonTokenAlreadyUsed,
			commands.ReasonTokenExpired,
			commands.ReasonCampaignGone,
		}
		for _, reason := range rejections {
			s.Run(reason, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), "b3BhcXVlLXRva2Vu").
					Return(&commands.VerificationResult{Valid: false, Reason: reason}, nil)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

				var response resdto.VerifyQRResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.False(response.Valid)
				s.Equal(reason, response.Reason)
				s.Nil(response.Member)
				s.Nil(response.Campaign)
			})
		}
	})

	s.Run("error: 500 only for storage failures", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "b3BhcXVlLXRva2Vu").
			Return(nil, errs.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("garbage token is a verdict, not an error", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "garbage").
			Return(&commands.VerificationResult{Valid: false, Reason: commands.ReasonTokenNotFound}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/verify-qr/garbage", nil, "")

		var response resdto.VerifyQRResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
	})
}
