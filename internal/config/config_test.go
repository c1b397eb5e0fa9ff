package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eliziario/credkeeper/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	testutil.AssertEqual(t, "credkeeper", cfg.Settings.Service)
	testutil.AssertEqual(t, false, cfg.Settings.RequireBiometric)
	testutil.AssertEqual(t, true, cfg.Settings.Prompt.ShowSaveOption)
	testutil.AssertEqual(t, true, cfg.Settings.Prompt.UseInstanceCache)
	testutil.AssertEqual(t, false, cfg.Settings.Prompt.ForceUIOnSavedCredentials)
	testutil.AssertEqual(t, "127.0.0.1:8190", cfg.Settings.Server.Address)
	testutil.AssertEqual(t, "/api", cfg.Settings.Server.Path)
	testutil.AssertEqual(t, 10, cfg.Settings.Logging.MaxSize)
	testutil.AssertEqual(t, 5, cfg.Settings.Logging.MaxBackups)
	testutil.AssertEqual(t, 30, cfg.Settings.Logging.MaxAge)
	testutil.AssertEqual(t, true, cfg.Settings.Logging.Compress)

	if cfg.Targets == nil {
		t.Error("Expected targets map to be initialized")
	}
	testutil.AssertEqual(t, 0, len(cfg.Targets))
}

func TestConfigDirAndPath(t *testing.T) {
	configDir, err := ConfigDir()
	testutil.AssertNoError(t, err)

	if !filepath.IsAbs(configDir) {
		t.Error("Expected absolute path for config directory")
	}

	expectedSuffix := filepath.Join(".config", "credkeeper")
	if !strings.HasSuffix(configDir, expectedSuffix) {
		t.Errorf("Expected config directory to end with %s, got %s", expectedSuffix, configDir)
	}

	configPath, err := ConfigPath()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, filepath.Join(configDir, "config.yaml"), configPath)
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "credkeeper", cfg.Settings.Service)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Settings.Service = "credkeeper-test"
	cfg.Settings.RequireBiometric = true
	cfg.Targets["App_test"] = Target{
		Instruction:   "Enter test credentials",
		Supplementary: "These are only used by the test suite",
		Username:      "alice",
	}

	testutil.AssertNoError(t, cfg.Save())

	loaded, err := Load()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "credkeeper-test", loaded.Settings.Service)
	testutil.AssertEqual(t, true, loaded.Settings.RequireBiometric)

	target, ok := loaded.GetTarget("App_test")
	testutil.AssertEqual(t, true, ok)
	testutil.AssertEqual(t, "alice", target.Username)
	testutil.AssertEqual(t, "Enter test credentials", target.Instruction)
}

func TestConfigFilePermissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	testutil.AssertNoError(t, cfg.Save())

	configPath, err := ConfigPath()
	testutil.AssertNoError(t, err)

	info, err := os.Stat(configPath)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, os.FileMode(0600), info.Mode().Perm())
}

func TestAddRemoveTarget(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	testutil.AssertNoError(t, cfg.AddTarget("App_test", Target{Username: "alice"}))
	testutil.AssertEqual(t, 1, len(cfg.ListTargets()))

	testutil.AssertNoError(t, cfg.RemoveTarget("App_test"))
	testutil.AssertEqual(t, 0, len(cfg.ListTargets()))

	_, ok := cfg.GetTarget("App_test")
	testutil.AssertEqual(t, false, ok)
}
