package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"loyalty": map[string]any{
			"rewardCost":         100,
			"rewardPriceCeiling": 2.5,
		},
		"storage": map[string]any{
			"path": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "LOYALTY_REWARDCOST", want: "loyalty.rewardCost"},
		{envKey: "LOYALTY_REWARDPRICECEILING", want: "loyalty.rewardPriceCeiling"},
		{envKey: "STORAGE_PATH", want: "storage.path"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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

func TestDefaults_LoyaltyConstants(t *testing.T) {
	cfg := Defaults()

	if cfg.Loyalty.PointsPerOrder != 10 {
		t.Fatalf("PointsPerOrder = %d, want 10", cfg.Loyalty.PointsPerOrder)
	}
	if cfg.Loyalty.RewardCost != 100 {
		t.Fatalf("RewardCost = %d, want 100", cfg.Loyalty.RewardCost)
	}
	if cfg.Loyalty.RewardPriceCeiling != 2.50 {
		t.Fatalf("RewardPriceCeiling = %v, want 2.50", cfg.Loyalty.RewardPriceCeiling)
	}
}
