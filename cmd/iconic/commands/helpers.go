package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
	"github.com/DuneRaccoon/iconic-go/pkg/iconicclient"
)

// Output format constants.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

const defaultYAMLIndent = 2

// Static errors for err113 compliance.
var (
	ErrAPINotConfigured = errors.New("no API endpoint configured, run 'iconic login' or pass --api")
)

// CreateClient builds a client from the resolved CLI configuration.
func CreateClient() (iconic.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPINotConfigured
	}

	config := &iconic.Config{
		APIEndpoint:  endpoint,
		AccessToken:  viper.GetString("token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewZerologAdapter()
	}

	return iconicclient.New(config)
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// ZerologAdapter adapts a zerolog.Logger to the iconic.Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a console-writer logger for CLI verbose output.
func NewZerologAdapter() *ZerologAdapter {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	return &ZerologAdapter{
		logger: zerolog.New(writer).With().Timestamp().Logger().Level(zerolog.DebugLevel),
	}
}

// Debug implements iconic.Logger.
func (a *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements iconic.Logger.
func (a *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements iconic.Logger.
func (a *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements iconic.Logger.
func (a *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

var _ iconic.Logger = (*ZerologAdapter)(nil)
