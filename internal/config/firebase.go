package config

import (
	"os"
	"sync"
)

type FirebaseConfig struct {
	WebAPIKey string
	ProjectID string
	// LookupURL overrides the identity toolkit endpoint; used by tests.
	LookupURL string
}

var (
	firebaseConfig *FirebaseConfig
	firebaseOnce   sync.Once
)

func LoadFirebaseConfig() *FirebaseConfig {
	firebaseOnce.Do(func() {
		firebaseConfig = &FirebaseConfig{
			WebAPIKey: os.Getenv("FIREBASE_WEB_API_KEY"),
			ProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
			LookupURL: os.Getenv("FIREBASE_LOOKUP_URL"),
		}
	})
	return firebaseConfig
}
