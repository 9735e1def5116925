package main

import (
	"io"
	"os"
	"fmt"
	"bytes"
	"strings"
	"path/filepath"

	"pixveil/util"
	"pixveil/config"
	"pixveil/local"
	"pixveil/stegano/img"
	"pixveil/stegano/lsb"
)

const (
	PixveilFolder = ".pixveil"
	ConfigFilename = "config.yml"
	LogFilename = "log.log"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	conf := loadOrDefaultConfig()
	logger := util.NewLogger( &conf.Logger )
	policy := lsb.ChannelPolicy{ IncludeAlpha: conf.StegConfig.IncludeAlpha }

	switch os.Args[1] {
	case "hide":
		if len( os.Args ) < 4 {
			fatal( "Usage: pixveil hide <input image> <output image> [message]" )
		}
		if err := hide( os.Args[2], os.Args[3], os.Args[4:], policy, conf.StegConfig.OutputFormat ); err != nil {
			logger.LogError( err )
			fatal( "Failed to hide message:", err )
		}
	case "extract":
		if len( os.Args ) < 3 {
			fatal( "Usage: pixveil extract <image>" )
		}
		if err := extract( os.Args[2], policy ); err != nil {
			logger.LogError( err )
			fatal( "Failed to extract message:", err )
		}
	case "capacity":
		if len( os.Args ) < 3 {
			fatal( "Usage: pixveil capacity <image>" )
		}
		if err := capacity( os.Args[2], policy ); err != nil {
			fatal( "Failed to compute capacity:", err )
		}
	case "serve":
		if err := local.RunApiServer( conf, logger ); err != nil {
			fatal( "Failed to run API server:", err )
		}
	case "genconf":
		filename, err := writeDefaultConfig()
		if err != nil {
			fatal( "Failed to write default configuration:", err )
		}
		fmt.Println( "Configuration written to", filename )
	default:
		help()
	}
}

func hide( inFile, outFile string, messageArgs []string, policy lsb.ChannelPolicy, outputFormat string ) error {

	message, err := readMessage( messageArgs )
	if err != nil {
		return err
	}

	raw, err := os.ReadFile( inFile )
	if err != nil {
		return err
	}
	buf, format, err := img.Load( raw )
	if err != nil {
		return err
	}

	encoded, err := lsb.Encode( buf, message, policy )
	if err != nil {
		return err
	}

	// write the configured container, or keep the one the input came in
	if outputFormat != "" {
		format = outputFormat
	}
	out, err := img.Save( encoded, format )
	if err != nil {
		return err
	}
	return os.WriteFile( outFile, out, 0660 )
}

func extract( inFile string, policy lsb.ChannelPolicy ) error {

	raw, err := os.ReadFile( inFile )
	if err != nil {
		return err
	}
	buf, _, err := img.Load( raw )
	if err != nil {
		return err
	}

	payload, length, err := lsb.Decode( buf, policy )
	if err != nil {
		return err
	}

	fmt.Println( util.FixUnicode( string( payload ) ) )
	fmt.Fprintln( os.Stderr, "Recovered", length, "bytes." )
	return nil
}

func capacity( inFile string, policy lsb.ChannelPolicy ) error {

	raw, err := os.ReadFile( inFile )
	if err != nil {
		return err
	}
	buf, _, err := img.Load( raw )
	if err != nil {
		return err
	}

	channels := policy.ChannelsUsed()
	maxBytes := lsb.MaxPayloadBytes( buf.Width, buf.Height, channels )
	fmt.Printf( "%dx%d, %d channels used: up to %d bytes of hidden text\n",
		buf.Width, buf.Height, channels, maxBytes )
	return nil
}

// the message comes from the remaining arguments, or from stdin
// when none were given
func readMessage( args []string ) ([]byte, error) {
	if len( args ) > 0 {
		return []byte( strings.Join( args, " " ) ), nil
	}
	data, err := io.ReadAll( os.Stdin )
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight( data, "\n" ), nil
}

func loadOrDefaultConfig() *config.FullConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig( "" )
	}
	configFile := filepath.Join( home, PixveilFolder, ConfigFilename )
	conf, err := config.LoadConfig( configFile )
	if err != nil {
		// no configuration yet, run with defaults and log to stdout
		return config.DefaultConfig( "" )
	}
	return conf
}

func writeDefaultConfig() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	folder := filepath.Join( home, PixveilFolder )
	if _, err := os.Stat( folder ); err != nil {
		if err = os.Mkdir( folder, 0760 ); err != nil {
			return "", err
		}
	}
	filename := filepath.Join( folder, ConfigFilename )
	logFilename := filepath.Join( folder, LogFilename )
	return filename, config.SaveConfig( filename, config.DefaultConfig( logFilename ) )
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./pixveil <command> [arguments]

The following commands are supported:
	hide <in> <out> [message]	hide a message inside an image (reads stdin if no message given)
	extract <image>			recover a hidden message from an image
	capacity <image>		show how many bytes an image can hold
	serve				run the local HTTP API
	genconf				write the default configuration file
`

	fmt.Printf("%s", line)
}
