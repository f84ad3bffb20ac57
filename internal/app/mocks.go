package app

// MockEmailProvider is used in tests and local development where no SMTP
// server is available.
type MockEmailProvider struct{}

func (m *MockEmailProvider) SendWelcome(to, name string) error                        { return nil }
func (m *MockEmailProvider) SendVerification(to, token string) error                  { return nil }
func (m *MockEmailProvider) SendPasswordReset(to, token string) error                 { return nil }
func (m *MockEmailProvider) SendMatchNotification(to, name, matchName string) error   { return nil }
func (m *MockEmailProvider) SendReferralReward(to, name string, rewardDays int) error { return nil }
func (m *MockEmailProvider) SendNotification(to, subject, message string) error       { return nil }
