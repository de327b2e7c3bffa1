package config

import (
	"errors"
	"os"
	"regexp"
	"tvguide/internal/pkg/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerHost string            `json:"serverHost" yaml:"serverHost"` // 必填，HTTP请求的指南服务器地址端口
	Headers    map[string]string `json:"headers" yaml:"headers"`       // 自定义HTTP请求头

	OptionChExcludeRule string         `json:"chExcludeRule" yaml:"chExcludeRule"` // 频道的过滤规则
	ChExcludeRule       *regexp.Regexp `json:"-" yaml:"-"`                         // Validate()时进行填充

	Log *logging.LogConfig `json:"log,omitempty" yaml:"log,omitempty"` // 日志相关设置
}

func (c *Config) Validate() error {
	// 校验config配置
	if c.ServerHost == "" {
		return errors.New("invalid tvguide config")
	}

	// L()：获取全局logger
	logger := zap.L()

	// 填充频道的过滤规则
	if c.OptionChExcludeRule != "" {
		rule, err := regexp.Compile(c.OptionChExcludeRule)
		if err != nil {
			logger.Warn("The channel exclusion rule is incorrect. Skip it.", zap.String("chExcludeRule", c.OptionChExcludeRule), zap.Error(err))
		} else {
			c.ChExcludeRule = rule
		}
	}

	return nil
}

func Load(fPath string) (*Config, error) {
	// 读取配置文件
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func CreateDefaultCfg(fPath string) error {
	// 写入默认配置
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// 创建编码器
	encoder := yaml.NewEncoder(f)

	// 缺省配置
	defaultCfg := Config{
		ServerHost: "127.0.0.1",
		Headers: map[string]string{
			"Accept":          "application/json",
			"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
			"Accept-Language": "zh-CN,en-US;q=0.8",
		},
		OptionChExcludeRule: "^.+?(测试|试播)$",
		Log: &logging.LogConfig{
			Level:    "info",
			IsStdout: true,
		},
	}

	return encoder.Encode(&defaultCfg)
}
