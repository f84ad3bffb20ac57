package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	DiscoveryHandler    *DiscoveryHandler
	InteractionHandler  *InteractionHandler
	ModerationHandler   *ModerationHandler
	ReferralHandler     *ReferralHandler
	NotificationHandler *NotificationHandler
	SubscriptionHandler *SubscriptionHandler
	AdminHandler        *AdminHandler
}
