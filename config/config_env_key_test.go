package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":         "",
			"firestoreDatabase": "(default)",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"payment": map[string]any{
			"keySecret": "",
		},
		"redis": map[string]any{
			"statsTtl": "30s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_FIRESTOREDATABASE", want: "firebase.firestoreDatabase"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PAYMENT_KEYSECRET", want: "payment.keySecret"},
		{envKey: "REDIS_STATSTTL", want: "redis.statsTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
