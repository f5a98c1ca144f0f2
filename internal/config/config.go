package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Storage StorageConfig
	Flow    FlowConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	flow, err := loadFlowConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		AI:      ai,
		Storage: loadStorageConfig(),
		Flow:    flow,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig 描述大模型相关配置。
type AIConfig struct {
	APIKey          string
	AccessKey       string
	SecretKey       string
	Model           string
	BaseURL         string
	Region          string
	Temperature     *float64
	TopP            *float64
	MaxTokens       *int
	ClassifyEnabled bool
	ClassifyTimeout time.Duration
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("Ark 凭证或模型配置缺失，至少提供 ARK_API_KEY + Model 或 AK/SK 组合")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	classifyEnabled, err := parseBoolEnv("AI_CLASSIFY_LLM_ENABLED", true)
	if err != nil {
		return AIConfig{}, err
	}

	classifyTimeout := 10 * time.Second
	if timeoutOverride, err := parseOptionalIntEnv("AI_CLASSIFY_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if timeoutOverride != nil && *timeoutOverride > 0 {
		classifyTimeout = time.Duration(*timeoutOverride) * time.Second
	}

	return AIConfig{
		APIKey:          strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:       strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:       strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:           strings.TrimSpace(os.Getenv("Model")),
		BaseURL:         getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:          getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:     temperature,
		TopP:            topP,
		MaxTokens:       maxTokens,
		ClassifyEnabled: classifyEnabled,
		ClassifyTimeout: classifyTimeout,
	}, nil
}

// StorageConfig 描述对象存储（Cloudflare R2，S3 兼容）配置。
type StorageConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// Enabled 表示是否提供了完整的存储凭证。
func (c StorageConfig) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		AccountID:       strings.TrimSpace(os.Getenv("R2_ACCOUNT_ID")),
		AccessKeyID:     strings.TrimSpace(os.Getenv("R2_ACCESS_KEY_ID")),
		SecretAccessKey: strings.TrimSpace(os.Getenv("R2_SECRET_ACCESS_KEY")),
		Bucket:          strings.TrimSpace(os.Getenv("R2_BUCKET")),
		PublicBaseURL:   getEnvOrDefault("R2_PUBLIC_BASE_URL", ""),
	}
}

// FlowConfig 描述会话流程引擎配置。
type FlowConfig struct {
	MaxTurns        int
	HistorySize     int
	GapMillis       int
	FragmentTimeout time.Duration
	AssetBaseURL    string
	MetadataKey     string
}

func loadFlowConfig() (FlowConfig, error) {
	maxTurns := 7
	if turnsOverride, err := parseOptionalIntEnv("FLOW_MAX_TURNS"); err != nil {
		return FlowConfig{}, err
	} else if turnsOverride != nil {
		if *turnsOverride < 1 {
			return FlowConfig{}, fmt.Errorf("FLOW_MAX_TURNS must be positive, got %d", *turnsOverride)
		}
		maxTurns = *turnsOverride
	}

	historySize := 10
	if sizeOverride, err := parseOptionalIntEnv("FLOW_HISTORY_SIZE"); err != nil {
		return FlowConfig{}, err
	} else if sizeOverride != nil && *sizeOverride > 0 {
		historySize = *sizeOverride
	}

	gapMillis := 500
	if gapOverride, err := parseOptionalIntEnv("FLOW_AUDIO_GAP_MS"); err != nil {
		return FlowConfig{}, err
	} else if gapOverride != nil && *gapOverride >= 0 {
		gapMillis = *gapOverride
	}

	fragmentTimeout := 10 * time.Second
	if timeoutOverride, err := parseOptionalIntEnv("FLOW_FRAGMENT_TIMEOUT_SECONDS"); err != nil {
		return FlowConfig{}, err
	} else if timeoutOverride != nil && *timeoutOverride > 0 {
		fragmentTimeout = time.Duration(*timeoutOverride) * time.Second
	}

	return FlowConfig{
		MaxTurns:        maxTurns,
		HistorySize:     historySize,
		GapMillis:       gapMillis,
		FragmentTimeout: fragmentTimeout,
		AssetBaseURL:    getEnvOrDefault("FLOW_ASSET_BASE_URL", ""),
		MetadataKey:     getEnvOrDefault("FLOW_METADATA_KEY", "conversation_starters/audio_metadata.json"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
