package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultMailSendTimeout    = 30 * time.Second
	defaultMailMaxRetry       = 3
	defaultWorkerConcurrency  = 5
	defaultAvatarSize         = 250
	defaultAvatarMaxUpload    = 5 << 20
	defaultAvatarPublicDir    = "public"

	// DefaultBcryptCost is the work factor used when auth.bcryptCost is unset.
	DefaultBcryptCost = 10
	// DefaultTokenTTL is the bearer token lifetime used when auth.tokenTTL is unset.
	DefaultTokenTTL = time.Hour

	// MailDispatcherInline sends verification mail from a goroutine in the API process.
	MailDispatcherInline = "inline"
	// MailDispatcherQueue enqueues verification mail for cmd/mailworker.
	MailDispatcherQueue = "queue"
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Mail configures the verification mail transport and how sends are dispatched
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Redis backs the mail queue when mail.dispatcher is "queue"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Worker configures cmd/mailworker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Avatar configures upload processing and where avatars are stored and served from
	Avatar *AvatarConfig `json:"avatar" yaml:"avatar"`
}

// SecretKeyConfig holds signing secrets.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	// RequireVerification rejects logins of unverified accounts even when the client does not ask for it
	RequireVerification bool `json:"requireVerification" yaml:"requireVerification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MailConfig defines the SMTP transport and the verification link base
type MailConfig struct {
	Host        string        `json:"host" yaml:"host"`
	Port        int           `json:"port" yaml:"port"`
	Username    string        `json:"username" yaml:"username"`
	Password    string        `json:"password" yaml:"password"`
	From        string        `json:"from" yaml:"from"`
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	Dispatcher  string        `json:"dispatcher" yaml:"dispatcher"`
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
	MaxRetry    int           `json:"maxRetry" yaml:"maxRetry"`
}

// RedisConfig defines the Redis connection used by the mail queue
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// WorkerConfig defines the mail worker
type WorkerConfig struct {
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// AvatarConfig defines avatar processing and storage
type AvatarConfig struct {
	// PublicDir is served as static files at the server root
	PublicDir string `json:"publicDir" yaml:"publicDir"`
	// BucketURL is a gocloud.dev blob URL; defaults to file://<publicDir>/avatars
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// URLPrefix is prepended to stored keys to build the public avatar URL
	URLPrefix string `json:"urlPrefix" yaml:"urlPrefix"`
	// TmpDir receives raw uploads before processing; defaults to os.TempDir()
	TmpDir        string `json:"tmpDir" yaml:"tmpDir"`
	Size          int    `json:"size" yaml:"size"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = DefaultTokenTTL
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
	if cfg.Mail.Dispatcher == "" {
		cfg.Mail.Dispatcher = MailDispatcherInline
	}
	if cfg.Mail.SendTimeout == 0 {
		cfg.Mail.SendTimeout = defaultMailSendTimeout
	}
	if cfg.Mail.MaxRetry == 0 {
		cfg.Mail.MaxRetry = defaultMailMaxRetry
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Concurrency <= 0 {
		cfg.Worker.Concurrency = defaultWorkerConcurrency
	}

	if cfg.Avatar == nil {
		cfg.Avatar = &AvatarConfig{}
	}
	if cfg.Avatar.PublicDir == "" {
		cfg.Avatar.PublicDir = defaultAvatarPublicDir
	}
	if cfg.Avatar.BucketURL == "" {
		abs, err := filepath.Abs(filepath.Join(cfg.Avatar.PublicDir, "avatars"))
		if err != nil {
			abs = filepath.Join(cfg.Avatar.PublicDir, "avatars")
		}
		cfg.Avatar.BucketURL = "file://" + filepath.ToSlash(abs) + "?create_dir=true"
	}
	if cfg.Avatar.URLPrefix == "" {
		cfg.Avatar.URLPrefix = "/avatars/"
	}
	if cfg.Avatar.TmpDir == "" {
		cfg.Avatar.TmpDir = os.TempDir()
	}
	if cfg.Avatar.Size == 0 {
		cfg.Avatar.Size = defaultAvatarSize
	}
	if cfg.Avatar.MaxUploadSize == 0 {
		cfg.Avatar.MaxUploadSize = defaultAvatarMaxUpload
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
