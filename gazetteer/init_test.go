package gazetteer_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

func (m *ProviderMock) Lookup(ctx context.Context, addr gazetteer.Address) (gazetteer.Record, error) {
	args := m.Called(ctx, addr)

	return args.Get(0).(gazetteer.Record), args.Error(1)
}

func (m *ProviderMock) HealthCheck(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(ip string, name string, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) HealthCheck(name string, healthy bool) {
	m.Called(name, healthy)
}
