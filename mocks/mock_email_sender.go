package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendCertificationNotice(ctx context.Context, notice port.CertificationNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}
