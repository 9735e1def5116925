package config

import (
	"path/filepath"
	"testing"

	"pixveil/util"
)

func TestSaveAndLoadConfig( t *testing.T ) {
	conf := FullConfig{
		SteganoConfig{
			IncludeAlpha: true,
			OutputFormat: "bmp",
		},
		ServerConfiguration{
			Address: "127.0.0.1:9999",
		},
		util.LoggerInfo{
			Filename: "test.log",
			IsColored: false,
			SaveTime: true,
			Mode: util.Error,
		},
	}
	filename := filepath.Join( t.TempDir(), "pixveil-test-config.yml" )
	if err := SaveConfig( filename, &conf ); err != nil {
		t.Errorf("Failed to save configuration: %s", err.Error())
	}
	conf2, err := LoadConfig( filename )
	if err != nil {
		t.Errorf("Failed to load configuration: %s", err.Error())
	}
	if conf.StegConfig != conf2.StegConfig || conf.ServerConfig != conf2.ServerConfig {
		t.Errorf("Configuration was changed during save/load process")
	}
}

func TestDefaultConfig( t *testing.T ) {
	conf := DefaultConfig( "/tmp/pixveil.log" )
	if conf.StegConfig.IncludeAlpha {
		t.Error("Alpha must be excluded by default")
	}
	if conf.StegConfig.OutputFormat != "png" {
		t.Errorf("Unexpected default output format: %s", conf.StegConfig.OutputFormat)
	}
	if conf.Logger.Filename != "/tmp/pixveil.log" {
		t.Errorf("Logger filename was not applied")
	}
}
