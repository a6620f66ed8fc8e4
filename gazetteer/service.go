package gazetteer

import "context"

// Service is the single entry point for lookups. It validates first
// and delegates to exactly one provider, injected at construction;
// swapping backends means constructing the Service with a different
// Provider.
type Service struct {
	provider Provider
	logger   Logger
}

// Lookup validates raw and resolves it through the provider. A
// validation failure short-circuits: the provider is never invoked
// for malformed or non-public input. Provider failures propagate
// unchanged, keeping their kind.
func (s *Service) Lookup(ctx context.Context, raw string) (Record, error) {
	addr, err := ParseAddress(raw)
	if err != nil {
		return Record{}, err
	}

	record, err := s.provider.Lookup(ctx, addr)
	if err != nil {
		s.logger.LookupError(addr.String(), s.provider.Name(), err)

		return Record{}, err
	}

	return record, nil
}

func (s *Service) CheckHealth(ctx context.Context) bool {
	healthy := s.provider.HealthCheck(ctx)

	s.logger.HealthCheck(s.provider.Name(), healthy)

	return healthy
}

func (s *Service) ProviderName() string {
	return s.provider.Name()
}

func NewService(provider Provider, logger Logger) *Service {
	if logger == nil {
		logger = nopLogger{}
	}

	return &Service{
		provider: provider,
		logger:   logger,
	}
}
