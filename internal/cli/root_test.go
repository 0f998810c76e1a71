package cli

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	// No flags, no config file: the built-in defaults must survive intact.
	// In particular the output directory must not be emptied by flag defaults
	// leaking through viper.
	if cfg.Output.Dir != "./results" {
		t.Errorf("Output.Dir = %q, want ./results", cfg.Output.Dir)
	}
	if cfg.Output.TopN != 20 {
		t.Errorf("Output.TopN = %d, want 20", cfg.Output.TopN)
	}
	if !cfg.Output.Charts {
		t.Error("Output.Charts should default to true")
	}
	if cfg.Language.Code != "csb" {
		t.Errorf("Language.Code = %q, want csb", cfg.Language.Code)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	origOut, origTop := outDir, topN
	defer func() { outDir, topN = origOut, origTop }()

	outDir = "/tmp/korpus-test"
	topN = 30

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output.Dir != "/tmp/korpus-test" {
		t.Errorf("Output.Dir = %q, want /tmp/korpus-test", cfg.Output.Dir)
	}
	if cfg.Output.TopN != 30 {
		t.Errorf("Output.TopN = %d, want 30", cfg.Output.TopN)
	}
}
