package email

// TemplateData is the base payload shared by all templates.
type TemplateData struct {
	UserName   string
	Subject    string
	Message    string
	ActionURL  string
	ActionText string
}

// MatchData fills the new-match template.
type MatchData struct {
	TemplateData
	MatchName string
}

// ReferralRewardData fills the referral-reward template.
type ReferralRewardData struct {
	TemplateData
	RewardDays int
}
