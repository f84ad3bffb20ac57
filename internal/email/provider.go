package email

// Provider sends transactional mail. Services depend on this interface so
// tests can swap in a recording mock.
type Provider interface {
	SendWelcome(to, name string) error
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	SendMatchNotification(to, name, matchName string) error
	SendReferralReward(to, name string, rewardDays int) error
	SendNotification(to, subject, message string) error
}
