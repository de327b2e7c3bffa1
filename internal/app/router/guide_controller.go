package router

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
	"tvguide/internal/app/guide"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// 缓存最新的已标注指南文档
	guidePtr atomic.Pointer[guide.GuideDocument]
)

// GuideAxis 时间轴刻度标签的响应
type GuideAxis struct {
	Labels []string `json:"labels"`
}

// GetJsonGuide 查询已标注的指南文档
func GetJsonGuide(c *gin.Context) {
	doc := guidePtr.Load()
	if doc == nil || len(doc.Rows) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	// 返回响应
	c.PureJSON(http.StatusOK, doc)
}

// GetTxtGuide 查询指南的txt格式内容
func GetTxtGuide(c *gin.Context) {
	doc := guidePtr.Load()
	if doc == nil || len(doc.Rows) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	// 将指南文档转换为txt格式
	txtContent, err := guide.ToTxtFormat(doc)
	if err != nil {
		logger.Error("Failed to convert guide document to txt format.", zap.Error(err))
		// 返回响应
		c.Status(http.StatusOK)
		return
	}

	// 返回响应
	c.String(http.StatusOK, txtContent)
}

// GetGuideAxis 查询时间轴的刻度标签
// 没有缓存文档或时间轴范围异常时返回空列表（无轴可画），不算错误
func GetGuideAxis(c *gin.Context) {
	labels := make([]string, 0)
	if doc := guidePtr.Load(); doc != nil {
		labels = guide.BuildAxis(doc.StartTime, doc.EndTime)
	}

	// 返回响应
	c.PureJSON(http.StatusOK, &GuideAxis{Labels: labels})
}

// updateGuideWithRetry 更新缓存的指南文档（失败重试）
func updateGuideWithRetry(ctx context.Context, guideClient *guide.Client, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = updateGuide(ctx, guideClient); err != nil {
			logger.Sugar().Errorf("Failed to update guide document, will try again after waiting %d seconds. Error: %v, number of retries: %d.", waitSeconds, err, i)
			time.Sleep(waitSeconds * time.Second)
		} else {
			break
		}
	}
	return err
}

// updateGuide 更新缓存的指南文档
func updateGuide(ctx context.Context, guideClient *guide.Client) error {
	// 查询最新的指南文档
	doc, err := guideClient.GetGuideDocument(ctx)
	if err != nil {
		return err
	}

	// 计算每个节目的网格坐标
	annotated := guide.Annotate(doc)

	logger.Sugar().Infof("Guide document updated, rows: %d.", len(annotated.Rows))
	// 更新缓存的指南文档
	guidePtr.Store(annotated)

	return nil
}
