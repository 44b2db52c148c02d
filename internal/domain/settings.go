package domain

import "time"

// AppSettings is the single long-lived settings record, replaced
// wholesale on update.
//
// The PIN is stored and compared in cleartext. It is a functional gate
// against casual access, not a security boundary; do not treat it as one.
type AppSettings struct {
	PINEnabled          bool       `json:"pinEnabled"`
	PIN                 string     `json:"pin,omitempty"`
	BackupToGoogleDrive bool       `json:"backupToGoogleDrive"`
	LastBackup          *time.Time `json:"lastBackup,omitempty"`
	LastSync            *time.Time `json:"lastSyncToSupabase,omitempty"`
}

// DefaultSettings returns the settings used when nothing has been persisted.
func DefaultSettings() AppSettings {
	return AppSettings{
		PINEnabled:          false,
		BackupToGoogleDrive: false,
	}
}
