package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Gateway GatewayConfig `yaml:"gateway"`
	Cache   CacheConfig   `yaml:"cache"`
	Content ContentConfig `yaml:"content"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	GatewayAddr string `yaml:"gateway_addr"`
	APIAddr     string `yaml:"api_addr"`
}

// GatewayConfig holds everything the content gateway and its clients need
// besides the Notion secrets.
//
// BaseURL is the full URL of the gateway's content endpoint as seen by the
// site API. An empty BaseURL means "no gateway configured": the access layer
// serves the bundled fallback datasets without issuing any network call.
type GatewayConfig struct {
	BaseURL        string   `yaml:"base_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// CacheConfig controls the content access layer cache windows.
// FreshFor is how long a fetched list is served without revalidation;
// EvictAfter is how long an unused entry survives before eviction.
type CacheConfig struct {
	FreshFor   Duration `yaml:"fresh_for"`
	EvictAfter Duration `yaml:"evict_after"`
}

// Duration makes time.Duration usable in config.yaml ("5m", "30m", ...).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// ContentConfig carries per-content-type display policy. The upstream
// workspace uses different status literals for the two types ("Publish" for
// blog posts, "Published" for case studies), so the literal is configuration
// rather than code.
type ContentConfig struct {
	BlogPosts   ContentTypeConfig `yaml:"blog_posts"`
	CaseStudies ContentTypeConfig `yaml:"case_studies"`
}

type ContentTypeConfig struct {
	PublishedStatus string `yaml:"published_status"`
}

// NotionSecrets are the three required gateway secrets. They are read from
// the environment (optionally via .env) and never from config.yaml.
type NotionSecrets struct {
	Token              string `envconfig:"NOTION_INTEGRATION_TOKEN"`
	BlogPostsDataSrcID string `envconfig:"NOTION_BLOGPOSTS_DATASOURCE_ID"`
	CaseStudyDataSrcID string `envconfig:"NOTION_CASESTUDIES_DATASOURCE_ID"`
}

// Complete reports whether every required secret is present.
func (s NotionSecrets) Complete() bool {
	return s.Token != "" && s.BlogPostsDataSrcID != "" && s.CaseStudyDataSrcID != ""
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
	c.applyDefaults()
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// LoadNotionSecrets reads the Notion secrets from the environment. A missing
// variable is not an error here; callers decide how to treat an incomplete
// set (the gateway fails the request, the site API runs on fallback data).
func LoadNotionSecrets() (NotionSecrets, error) {
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	var s NotionSecrets
	if err := envconfig.Process("", &s); err != nil {
		return NotionSecrets{}, err
	}
	return s, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Server.GatewayAddr == "" {
		c.Server.GatewayAddr = ":8080"
	}
	if c.Server.APIAddr == "" {
		c.Server.APIAddr = ":8081"
	}
	if c.Cache.FreshFor == 0 {
		c.Cache.FreshFor = Duration(5 * time.Minute)
	}
	if c.Cache.EvictAfter == 0 {
		c.Cache.EvictAfter = Duration(30 * time.Minute)
	}
	if c.Content.BlogPosts.PublishedStatus == "" {
		c.Content.BlogPosts.PublishedStatus = "Publish"
	}
	if c.Content.CaseStudies.PublishedStatus == "" {
		c.Content.CaseStudies.PublishedStatus = "Published"
	}
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
