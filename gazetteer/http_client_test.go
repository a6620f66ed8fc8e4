package gazetteer_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

type HTTPClientTestSuite struct {
	suite.Suite

	client gazetteer.HTTPClient
}

func (suite *HTTPClientTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *HTTPClientTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *HTTPClientTestSuite) SetupTest() {
	suite.client = gazetteer.NewHTTPClient(&http.Client{},
		"test-agent",
		time.Millisecond,
		100)
}

func (suite *HTTPClientTestSuite) TearDownTest() {
	httpmock.Reset()
}

func (suite *HTTPClientTestSuite) TestSetsUserAgent() {
	httpmock.RegisterResponder("GET", "http://example.com/path",
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("test-agent", req.Header.Get("User-Agent"))

			return httpmock.NewStringResponse(http.StatusOK, "{}"), nil
		})

	req, err := http.NewRequest("GET", "http://example.com/path", nil)
	suite.Require().NoError(err)

	resp, err := suite.client.Do(req)

	suite.Require().NoError(err)
	resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)
}

func (suite *HTTPClientTestSuite) TestDoesNotHideStatusCodes() {
	httpmock.RegisterResponder("GET", "http://example.com/path",
		httpmock.NewStringResponder(http.StatusTooManyRequests, ""))

	req, err := http.NewRequest("GET", "http://example.com/path", nil)
	suite.Require().NoError(err)

	resp, err := suite.client.Do(req)

	suite.Require().NoError(err)
	resp.Body.Close()

	suite.Equal(http.StatusTooManyRequests, resp.StatusCode)
}

func (suite *HTTPClientTestSuite) TestClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", "http://example.com/path", nil)
	suite.Require().NoError(err)

	_, err = suite.client.Do(req) // nolint: bodyclose

	suite.Error(err)
}

func TestHTTPClient(t *testing.T) {
	suite.Run(t, &HTTPClientTestSuite{})
}
