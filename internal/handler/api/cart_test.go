//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/handler/api"
	"nightpass/internal/pkg/errs"
	"nightpass/internal/usecase/commands"
	"nightpass/tests/common/httptest"
	commandsmock "nightpass/tests/mock/commands"
	queriesmock "nightpass/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	owner        identity.Owner
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	owner, err := identity.NewAnonymous("sess-handler-test")
	s.Require().NoError(err)
	s.owner = owner

	// Stand-in for the identity middleware
	identityStub := func(c *gin.Context) {
		c.Set("owner", s.owner)
		c.Next()
	}

	s.router.POST("/api/cart/lines", identityStub, s.handler.AddLine)
	s.router.PATCH("/api/cart/lines/:id", identityStub, s.handler.UpdateLine)
	s.router.DELETE("/api/cart/lines/:id", identityStub, s.handler.RemoveLine)
	s.router.GET("/api/cart", identityStub, s.handler.GetCart)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func validAddBody() map[string]any {
	return map[string]any{
		"ticket_id": uuid.New().String(),
		"date":      "2025-07-04",
		"quantity":  2,
	}
}

func fixtureLine() *cart.Line {
	return cart.ReconstructLine(
		uuid.New(), uuid.New(), uuid.New(),
		time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
		2, time.Now(),
	)
}

func (s *CartHandlerTestSuite) TestAddLine() {
	url := "/api/cart/lines"

	s.Run("success: returns 201 Created with the stored line", func() {
		line := fixtureLine()
		s.mockCommands.EXPECT().AddLine(gomock.Any(), s.owner, gomock.Any()).
			Return(line, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAddBody(), "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(line.ID().String(), body["id"])
		s.Equal("2025-07-04", body["date"])
		s.EqualValues(2, body["quantity"])
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on bad date format", func() {
		body := validAddBody()
		body["date"] = "04/07/2025"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 404 when ticket does not exist", func() {
		s.mockCommands.EXPECT().AddLine(gomock.Any(), s.owner, gomock.Any()).
			Return(nil, commands.ErrTicketNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAddBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
	})

	s.Run("error: 422 when the club is closed that weekday", func() {
		s.mockCommands.EXPECT().AddLine(gomock.Any(), s.owner, gomock.Any()).
			Return(nil, commands.ErrClubClosed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAddBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "closed")
	})

	s.Run("error: 422 with remaining stock detail", func() {
		stockErr := errs.Mark(&cart.StockError{Remaining: 1}, commands.ErrInsufficientStock)
		s.mockCommands.EXPECT().AddLine(gomock.Any(), s.owner, gomock.Any()).
			Return(nil, stockErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAddBody(), "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), `"remaining":1`)
	})
}

func (s *CartHandlerTestSuite) TestUpdateLine() {
	lineID := uuid.New()
	url := "/api/cart/lines/" + lineID.String()

	s.Run("success: returns 200 with the updated line", func() {
		line := fixtureLine()
		s.mockCommands.EXPECT().UpdateLine(gomock.Any(), s.owner, lineID, 3).
			Return(line, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(line.ID().String(), body["id"])
	})

	s.Run("error: 400 on malformed line id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/cart/lines/not-a-uuid", map[string]any{"quantity": 3}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 when the line belongs to someone else", func() {
		s.mockCommands.EXPECT().UpdateLine(gomock.Any(), s.owner, lineID, 3).
			Return(nil, commands.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 when the line does not exist", func() {
		s.mockCommands.EXPECT().UpdateLine(gomock.Any(), s.owner, lineID, 3).
			Return(nil, commands.ErrLineNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CartHandlerTestSuite) TestRemoveLine() {
	lineID := uuid.New()
	url := "/api/cart/lines/" + lineID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), s.owner, lineID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the line does not exist", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), s.owner, lineID).
			Return(commands.ErrLineNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
