package guide

import (
	"fmt"
	"net/http"
	"regexp"

	"go.uber.org/zap"
)

type Client struct {
	httpClient    *http.Client      // HTTP客户端
	host          string            // HTTP请求的指南服务器地址端口
	headers       map[string]string // 自定义HTTP请求头
	chExcludeRule *regexp.Regexp    // 频道的过滤规则

	logger *zap.Logger // 日志
}

func NewClient(httpClient *http.Client, serverHost string, headers map[string]string, chExcludeRule *regexp.Regexp) (*Client, error) {
	// 服务器地址必须配置
	if serverHost == "" {
		return nil, fmt.Errorf("serverHost is empty")
	}

	c := Client{
		httpClient:    httpClient,
		host:          serverHost,
		headers:       headers,
		chExcludeRule: chExcludeRule,
		logger:        zap.L(),
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return &c, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Host", c.host)
	// 设置自定义HTTP请求头
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}
