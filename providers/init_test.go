package providers_test

import (
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

type ProviderTestSuite struct {
	suite.Suite

	http gazetteer.HTTPClient
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.http = gazetteer.NewHTTPClient(&http.Client{},
		"test-agent",
		time.Millisecond,
		100)
}

func (suite *ProviderTestSuite) Address(raw string) gazetteer.Address {
	addr, err := gazetteer.ParseAddress(raw)
	if err != nil {
		suite.FailNow("cannot parse test address: " + raw)
	}

	return addr
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}
