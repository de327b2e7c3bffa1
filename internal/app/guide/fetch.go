package guide

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

var ErrGuideIsEmpty = errors.New("the guide document is empty")

// GetGuideDocument 获取节目指南文档
// 数据源是单个无鉴权的JSON接口，文档中的所有时间均为毫秒时间戳。
// 仅做文档级别的校验：单个节目的时间异常原样保留，由Annotate()的最小列宽兜底。
func (c *Client) GetGuideDocument(ctx context.Context) (*GuideDocument, error) {
	// 创建请求
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/guide", c.host), nil)
	if err != nil {
		return nil, err
	}

	// 设置请求头
	c.setCommonHeaders(req)

	// 执行请求
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status code: %d", resp.StatusCode)
	}

	// 解析响应内容
	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var doc GuideDocument
	if err = json.Unmarshal(result, &doc); err != nil {
		return nil, err
	}

	if len(doc.Rows) == 0 {
		return nil, ErrGuideIsEmpty
	}

	// 时间轴范围异常时只告警不报错，后续BuildAxis()会返回空列表（无轴可画）
	if doc.StartTime >= doc.EndTime {
		c.logger.Warn("The guide axis bounds are degenerate.",
			zap.Int64("startTime", doc.StartTime), zap.Int64("endTime", doc.EndTime))
	}

	// 过滤掉匹配排除规则的频道
	if c.chExcludeRule != nil {
		rows := make([]ChannelRow, 0, len(doc.Rows))
		for _, row := range doc.Rows {
			if c.chExcludeRule.MatchString(row.Channel.Name) {
				continue
			}
			rows = append(rows, row)
		}
		doc.Rows = rows
	}

	return &doc, nil
}
