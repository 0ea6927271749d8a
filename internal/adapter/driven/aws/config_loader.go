package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// ConfigLoader carrega e guarda em cache a configuração AWS de cada profile.
type ConfigLoader struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex
}

// NewConfigLoader creates an empty loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{cfgCache: make(map[string]aws.Config)}
}

// Load returns the shared configuration for profile, with region overridden when non-empty.
// An empty profile uses the SDK's default credential chain.
func (l *ConfigLoader) Load(ctx context.Context, profile, region string) (aws.Config, error) {
	cfg, err := l.load(ctx, profile)
	if err != nil {
		return aws.Config{}, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}
	return regionalCfg, nil
}

func (l *ConfigLoader) load(ctx context.Context, profile string) (aws.Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cfg, ok := l.cfgCache[profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profileName(profile), err)
	}

	l.cfgCache[profile] = cfg
	return cfg, nil
}

func profileName(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
