package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"mongo": map[string]any{
				"uri": "mongodb://localhost:27017",
			},
		},
		"auth": map[string]any{
			"sessionTTL": "168h",
			"identityExchange": map[string]any{
				"url": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_MONGO_URI", want: "store.mongo.uri"},
		{envKey: "AUTH_SESSIONTTL", want: "auth.sessionTTL"},
		{envKey: "AUTH_IDENTITYEXCHANGE_URL", want: "auth.identityExchange.url"},
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
