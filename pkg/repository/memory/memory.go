package memory

import (
	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository implementation, used for tests and
// the --repository-backend=memory mode.
type Memory struct {
	portfolio *portfolioRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		portfolio: newPortfolioRepository(),
	}
}

func (m *Memory) Portfolio() interfaces.PortfolioRepository {
	return m.portfolio
}

func (m *Memory) Close() error {
	return nil
}
