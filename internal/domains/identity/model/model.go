package model

import "time"

const (
	EntityName = "account"

	// Persisted record keys, one per concern: the current session and the
	// registry of registered accounts. Demo accounts are a fixed seed and
	// never enter the registry.
	StorageKeySession  = "studyspot_user"
	StorageKeyRegistry = "studyspot_registered_users"
)

type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsDemo    bool      `json:"isDemo"`
	CreatedAt time.Time `json:"createdAt"`
}

// DemoAccounts returns the fixed seed of one-click login accounts. They are
// exempt from email uniqueness and carry no creation timestamp.
func DemoAccounts() []Account {
	return []Account{
		{ID: "demo-1", Name: "Maria Reyes", Email: "maria@studyspot.demo", IsDemo: true},
		{ID: "demo-2", Name: "Juan dela Cruz", Email: "juan@studyspot.demo", IsDemo: true},
		{ID: "demo-3", Name: "Alex Santos", Email: "alex@studyspot.demo", IsDemo: true},
	}
}
