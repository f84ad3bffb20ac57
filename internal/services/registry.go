package services

// ServiceContainer holds every application service. It is assembled once
// at startup and handed to the handler layer.
type ServiceContainer struct {
	AuthService          AuthService
	UserService          UserService
	ProfileService       ProfileService
	DiscoveryService     DiscoveryService
	InteractionService   InteractionService
	ModerationService    ModerationService
	ReferralService      ReferralService
	NotificationService  NotificationService
	SubscriptionService  SubscriptionService
	MatchSettingsService MatchSettingsService
}
