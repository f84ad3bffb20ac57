package models

import "gorm.io/datatypes"

// MatchSettings is the single persisted row holding the global scoring
// weights. It is loaded through a repository and injected where needed;
// there is no process-wide singleton.
type MatchSettings struct {
	BaseModel
	Weights   datatypes.JSON `gorm:"type:jsonb;not null"` // algorithms.WeightConfig
	UpdatedBy string
}
