package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultUploadMaxBytes     = 5 << 20
	defaultOutboxInterval     = 30 * time.Second
	defaultOutboxBatchSize    = 50
	defaultOutboxMaxAttempts  = 10
	defaultStatsCacheTTL      = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for Firestore and Firebase Auth
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Payment gateway credentials
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// Mail configuration for the templated mail sender
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Media configuration for uploaded images
	Media *MediaConfig `json:"media" yaml:"media"`

	// PubSub configuration for notification task publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// RabbitMQ configuration, used when pubsub.provider is "rabbitmq"
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Redis configuration for the admin stats cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Outbox relay configuration
	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// QRCode configuration for booking tickets
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configuration for the mail worker binary
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project used for the document store and identity
type FirebaseConfig struct {
	ProjectID         string `json:"projectId" yaml:"projectId"`
	CredentialsPath   string `json:"credentialsPath" yaml:"credentialsPath"`
	FirestoreDatabase string `json:"firestoreDatabase" yaml:"firestoreDatabase"`

	// Emulator support for local development and integration testing
	UseEmulator           bool   `json:"useEmulator" yaml:"useEmulator"`
	EmulatorAuthHost      string `json:"emulatorAuthHost" yaml:"emulatorAuthHost"`
	EmulatorFirestoreHost string `json:"emulatorFirestoreHost" yaml:"emulatorFirestoreHost"`
}

// PaymentConfig defines the payment gateway credentials
type PaymentConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	KeyID     string        `json:"keyId" yaml:"keyId"`
	KeySecret string        `json:"keySecret" yaml:"keySecret"`
	Currency  string        `json:"currency" yaml:"currency"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// MailConfig defines the templated mail sender and the template ids per notification kind
type MailConfig struct {
	Endpoint    string        `json:"endpoint" yaml:"endpoint"`
	ServiceID   string        `json:"serviceId" yaml:"serviceId"`
	PublicKey   string        `json:"publicKey" yaml:"publicKey"`
	AccessToken string        `json:"accessToken" yaml:"accessToken"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`

	// Templates maps a notification kind (booking_cancelled, ...) to a template id
	Templates map[string]string `json:"templates" yaml:"templates"`
}

// MediaConfig defines where uploaded images are stored
type MediaConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. gs://bucket, s3://bucket?region=x, file:///tmp/media
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxBytes      int64  `json:"maxBytes" yaml:"maxBytes"`
}

// PubSubConfig defines Pub/Sub configuration for notification publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "rabbitmq" for AMQP
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushSecret signs push requests of the local provider; empty disables signing
	PushSecret string `json:"pushSecret" yaml:"pushSecret"`
}

// RabbitMQConfig defines the AMQP broker used by the rabbitmq provider
type RabbitMQConfig struct {
	URL           string `json:"url" yaml:"url"`
	Queue         string `json:"queue" yaml:"queue"`
	Prefetch      int    `json:"prefetch" yaml:"prefetch"`
	MaxRedelivery int    `json:"maxRedelivery" yaml:"maxRedelivery"`
}

// RedisConfig defines the Redis connection for caching
type RedisConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	StatsTTL time.Duration `json:"statsTtl" yaml:"statsTtl"`
}

// OutboxConfig defines how the relay re-publishes pending notification tasks
type OutboxConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Interval    time.Duration `json:"interval" yaml:"interval"`
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// WorkerConfig defines the mail worker's own HTTP port and push authentication
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// PushServiceAccount is the service account email expected on Google push tokens
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	// Example: PAYMENT_KEYSECRET -> payment.keySecret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the code can rely on them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.MaxBytes <= 0 {
		cfg.Media.MaxBytes = defaultUploadMaxBytes
	}

	if cfg.Outbox == nil {
		cfg.Outbox = &OutboxConfig{Enabled: true}
	}
	if cfg.Outbox.Interval <= 0 {
		cfg.Outbox.Interval = defaultOutboxInterval
	}
	if cfg.Outbox.BatchSize <= 0 {
		cfg.Outbox.BatchSize = defaultOutboxBatchSize
	}
	if cfg.Outbox.MaxAttempts <= 0 {
		cfg.Outbox.MaxAttempts = defaultOutboxMaxAttempts
	}

	if cfg.Redis != nil && cfg.Redis.StatsTTL <= 0 {
		cfg.Redis.StatsTTL = defaultStatsCacheTTL
	}

	if cfg.Payment != nil && cfg.Payment.Currency == "" {
		cfg.Payment.Currency = "INR"
	}
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
