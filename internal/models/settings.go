package models

import "time"

// Settings holds the branding configuration for the diagnostic frontend
// #NORMALIZATION_DECISION: Single-document collection with a fixed key,
// upserted on every update (the legacy settings table had exactly one row)
type Settings struct {
	Key           string    `bson:"_id" json:"-"`
	LogoURL       string    `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	NavbarLogoURL string    `bson:"navbar_logo_url,omitempty" json:"navbar_logo_url,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// SettingsKey is the fixed document key of the settings singleton
const SettingsKey = "branding"

// CollectionName returns the MongoDB collection name for settings
func (Settings) CollectionName() string {
	return "settings"
}

// BeforeUpsert sets the fixed key and the UpdatedAt timestamp
func (s *Settings) BeforeUpsert() {
	s.Key = SettingsKey
	s.UpdatedAt = time.Now().UTC()
}
