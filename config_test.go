package evergreen

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NeedleCount = 0
	cfg.TreeRadius = -1
	cfg.AnimationSpeed = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	for _, field := range []string{"needleCount", "treeRadius", "animationSpeed"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
	if strings.Contains(err.Error(), "giftCount") {
		t.Errorf("error %q mentions a valid field", err)
	}
}

func TestValidateRejectsBadPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette.GoldWarm = "gold"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"needleCount": 1000,
		"treeHeight": 12,
		"seed": 7,
		"palette": {"redVelvet": "#ff0000"}
	}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.NeedleCount != 1000 || cfg.TreeHeight != 12 || cfg.Seed != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.GiftCount != def.GiftCount || cfg.ScatterRadius != def.ScatterRadius {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Palette.GoldMetallic != def.Palette.GoldMetallic {
		t.Errorf("palette default lost: %q", cfg.Palette.GoldMetallic)
	}
	pal, err := cfg.Palette.Parse()
	if err != nil {
		t.Fatal(err)
	}
	assertNearTol(t, "redVelvet.R", pal.RedVelvet.R, 1, 1e-9)
	assertNearTol(t, "redVelvet.G", pal.RedVelvet.G, 0, 1e-9)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	_, err := LoadConfig([]byte(`not json`))
	if err == nil || !strings.HasPrefix(err.Error(), "parse config:") {
		t.Errorf("err = %v, want parse config error", err)
	}
}

func TestLoadConfigRejectsNonPositive(t *testing.T) {
	_, err := LoadConfig([]byte(`{"scatterRadius": 0}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
