package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"expo": map[string]any{
			"accessToken":    "",
			"requestTimeout": "20s",
		},
		"relay": map[string]any{
			"chunkSize": 0,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"env": map[string]any{
			"log": map[string]any{
				"level": "info",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "EXPO_ACCESSTOKEN", want: "expo.accessToken"},
		{envKey: "EXPO_REQUESTTIMEOUT", want: "expo.requestTimeout"},
		{envKey: "RELAY_CHUNKSIZE", want: "relay.chunkSize"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "PORT", want: "port"},
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

func TestAcceptEnvKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "port", want: true},
		{key: "expo.accessToken", want: true},
		{key: "home", want: false},
		{key: "path", want: false},
		{key: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := acceptEnvKey(tt.key); got != tt.want {
				t.Fatalf("acceptEnvKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
