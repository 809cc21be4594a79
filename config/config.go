package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Generation GenerationConfig `yaml:"generation"`
	Groq       GroqConfig       `yaml:"groq"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Deploy     DeployConfig     `yaml:"deploy"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

// GenerationConfig selects and tunes the generation backend.
type GenerationConfig struct {
	// Backend is either "groq" or "gemini".
	Backend string `yaml:"backend"`

	// ChunkSize is the maximum resume-text chunk size (in characters)
	// sent to a single summarization call. 0 or less means no chunking.
	ChunkSize int `yaml:"chunk_size"`
}

type GroqConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`

	// APIKey comes from the GROQ_API_KEY environment variable.
	APIKey string `yaml:"-"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`

	// APIKey comes from the GEMINI_API_KEY environment variable.
	APIKey string `yaml:"-"`
}

// DeployConfig selects the hosting provider the gateway forwards sites to.
type DeployConfig struct {
	// Provider is one of "netlify", "s3", "local".
	Provider string `yaml:"provider"`

	Netlify NetlifyConfig `yaml:"netlify"`
	S3      S3Config      `yaml:"s3"`
	Local   LocalConfig   `yaml:"local"`
}

type NetlifyConfig struct {
	BaseURL string `yaml:"base_url"`
	SiteID  string `yaml:"site_id"`

	// AuthToken comes from the NETLIFY_AUTH_TOKEN environment variable.
	AuthToken string `yaml:"-"`
}

type S3Config struct {
	Endpoint      string `yaml:"endpoint"`
	Region        string `yaml:"region"`
	Bucket        string `yaml:"bucket"`
	UseSSL        bool   `yaml:"use_ssl"`
	PublicBaseURL string `yaml:"public_base_url"`

	// Credentials come from S3_ACCESS_KEY / S3_SECRET_KEY.
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

type LocalConfig struct {
	Dir           string `yaml:"dir"`
	PublicBaseURL string `yaml:"public_base_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	// secrets never live in config.yaml
	c.Groq.APIKey = os.Getenv("GROQ_API_KEY")
	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	c.Deploy.Netlify.AuthToken = os.Getenv("NETLIFY_AUTH_TOKEN")
	c.Deploy.S3.AccessKey = os.Getenv("S3_ACCESS_KEY")
	c.Deploy.S3.SecretKey = os.Getenv("S3_SECRET_KEY")

	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Server.Address == "" {
		c.Server.Address = ":8000"
	}
	if c.Generation.Backend == "" {
		c.Generation.Backend = "groq"
	}
	if c.Generation.ChunkSize == 0 {
		c.Generation.ChunkSize = 2000
	}
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Groq.Model == "" {
		c.Groq.Model = "llama-3.1-8b-instant"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Deploy.Provider == "" {
		c.Deploy.Provider = "local"
	}
	if c.Deploy.Netlify.BaseURL == "" {
		c.Deploy.Netlify.BaseURL = "https://api.netlify.com"
	}
	if c.Deploy.Local.Dir == "" {
		c.Deploy.Local.Dir = "deployed_sites"
	}
}

// GenerationKeyConfigured reports whether the selected generation backend
// has an API credential. The health endpoint exposes this flag.
func (c AppConfig) GenerationKeyConfigured() bool {
	switch c.Generation.Backend {
	case "gemini":
		return c.Gemini.APIKey != ""
	default:
		return c.Groq.APIKey != ""
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// SetConfigForTest replaces the singleton so tests can run without a config.yaml.
func SetConfigForTest(c AppConfig) {
	applyDefaults(&c)
	config = &c
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
