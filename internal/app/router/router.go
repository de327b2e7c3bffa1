package router

import (
	"context"
	"net/http"
	"time"
	"tvguide/internal/app/config"
	"tvguide/internal/app/guide"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger *zap.Logger

func NewEngine(ctx context.Context, conf *config.Config, interval time.Duration) (*gin.Engine, error) {
	// L()：获取全局logger
	logger = zap.L()

	gin.SetMode(gin.ReleaseMode)

	// 创建指南客户端
	guideClient, err := newGuideClient(conf)
	if err != nil {
		return nil, err
	}

	// 执行初始化操作
	err = initData(ctx, guideClient)
	if err != nil {
		return nil, err
	}

	// 执行定时任务
	Schedule(ctx, guideClient, interval)

	// 创建 Gin 路由引擎
	r := gin.New()

	// 日志记录
	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// 查询已标注的指南-json格式
	r.GET("/guide/json", GetJsonGuide)
	// 查询已标注的指南-txt格式
	r.GET("/guide/txt", GetTxtGuide)
	// 查询时间轴刻度标签
	r.GET("/guide/axis", GetGuideAxis)

	return r, nil
}

// initData 初始化数据
func initData(ctx context.Context, guideClient *guide.Client) error {
	// 更新指南文档数据
	return updateGuideWithRetry(ctx, guideClient, 3)
}

// newGuideClient 读取配置文件并创建指南客户端
func newGuideClient(conf *config.Config) (*guide.Client, error) {
	// 校验配置文件
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	// 创建指南客户端
	return guide.NewClient(&http.Client{
		Timeout: 10 * time.Second,
	}, conf.ServerHost, conf.Headers, conf.ChExcludeRule)
}
