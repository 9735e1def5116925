package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"pixveil/util"
)

/*
 * Configuration for steganography itself: whether the alpha channel
 * takes part in embedding and which container format results are
 * written in. The alpha setting must match between hiding and
 * extraction or extraction reassembles the wrong bits.
 */
type SteganoConfig struct {
	IncludeAlpha	bool	`yaml:"include_alpha"`
	OutputFormat	string	`yaml:"output_format"`
}

/*
 * Server configuration - configuration of the local API server.
 */
type ServerConfiguration struct {
	Address		string	`yaml:"address"`
}

type FullConfig struct {
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	ServerConfig	ServerConfiguration	`yaml:"local_server_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal( data, &conf ); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}

func DefaultConfig( logFilename string ) *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			IncludeAlpha: false,
			OutputFormat: "png",
		},
		ServerConfig: ServerConfiguration{
			Address: "127.0.0.1:8080",
		},
		Logger: util.LoggerInfo{
			Filename: logFilename,
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning,
		},
	}
}
