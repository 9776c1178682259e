package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"relay/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultPort               = 3000
	defaultMaxRequestBodySize = "100KB"
	defaultLogLevel           = "info"
	defaultExpoBaseURL        = "https://exp.host"
	defaultPublishTimeout     = 2 * time.Second
)

// topLevelScalars are the only root keys that may be set from a single-segment env var.
var topLevelScalars = map[string]struct{}{
	"port": {},
}

type Config struct {
	// Port is read from PORT so the relay runs unchanged on PaaS hosts.
	Port int `json:"port" yaml:"port"`

	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Provider ProviderConfig `json:"provider" yaml:"provider"`

	Expo ExpoConfig `json:"expo" yaml:"expo"`

	// Firebase configuration, required when provider.kind is "fcm"
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Relay RelayConfig `json:"relay" yaml:"relay"`

	// PubSub configuration for dispatch events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ProviderConfig selects the upstream push provider
type ProviderConfig struct {
	// Kind is "expo" (default) or "fcm"
	Kind string `json:"kind" yaml:"kind"`
}

// ExpoConfig defines the Expo push API client configuration
type ExpoConfig struct {
	BaseURL     string `json:"baseURL" yaml:"baseURL"`
	AccessToken string `json:"accessToken" yaml:"accessToken"`

	// RequestTimeout bounds each push request, zero disables the timeout
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RelayConfig tunes how outbound messages are chunked and dispatched
type RelayConfig struct {
	// ChunkSize overrides the provider chunk limit when positive and smaller
	ChunkSize int `json:"chunkSize" yaml:"chunkSize"`

	// ChunkTimeout bounds each chunk submission, zero disables the timeout
	ChunkTimeout time.Duration `json:"chunkTimeout" yaml:"chunkTimeout"`

	// PublishTimeout bounds the dispatch event publish that runs before the response is written
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads an optional <currEnv>.yaml file through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// The file is optional: a bare environment is enough to run the relay
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}

		break
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// EXPO_ACCESSTOKEN -> expo.accessToken
			key := canonicalizeEnvKey(k, existingConfigMap)
			if !acceptEnvKey(key) {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = defaultLogLevel
	}

	cfg.Provider.Kind = strings.ToLower(strings.TrimSpace(cfg.Provider.Kind))
	if cfg.Provider.Kind == "" {
		cfg.Provider.Kind = constants.PushProviderExpo
	}

	if strings.TrimSpace(cfg.Expo.BaseURL) == "" {
		cfg.Expo.BaseURL = defaultExpoBaseURL
	}

	if cfg.Relay.PublishTimeout == 0 {
		cfg.Relay.PublishTimeout = defaultPublishTimeout
	}

	switch {
	case cfg.Port < 0 || cfg.Port > 65535:
		return errors.Errorf("invalid port %d", cfg.Port)
	case cfg.Relay.ChunkSize < 0:
		return errors.Errorf("relay.chunkSize must not be negative, got %d", cfg.Relay.ChunkSize)
	case cfg.Relay.ChunkTimeout < 0:
		return errors.Errorf("relay.chunkTimeout must not be negative, got %s", cfg.Relay.ChunkTimeout)
	case cfg.Relay.PublishTimeout < 0:
		return errors.Errorf("relay.publishTimeout must not be negative, got %s", cfg.Relay.PublishTimeout)
	}

	return nil
}

// acceptEnvKey drops unrelated single-segment variables such as HOME or PATH.
func acceptEnvKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.Contains(key, ".") {
		return true
	}
	_, ok := topLevelScalars[strings.ToLower(key)]

	return ok
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
