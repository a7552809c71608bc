package sms

import "inflo_backend/internal/logger"

// Provider is the delivery seam for OTP messages. A real gateway (Twilio,
// SNS) would implement the same interface; the prototype only ever ships
// the mock.
type Provider interface {
	// SendOTP delivers the one-time code to the phone number.
	SendOTP(phone, code string) error
}

// MockProvider logs the code instead of sending it.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) SendOTP(phone, code string) error {
	logger.Info("Mock OTP sent", "phone", phone, "code", code)
	return nil
}
