package cmds

import (
	"errors"
	"fmt"
	"time"
	"tvguide/internal/app/router"
	"tvguide/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var httpConfig HttpConfig

type HttpConfig struct {
	Port     int           `json:"port"`
	Interval time.Duration `json:"interval"`
}

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务，提供已标注指南、时间轴等查询接口。",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 初始化日志
			if err := logging.InitLogger(conf.Log); err != nil {
				return err
			}

			// 检查自动更新间隔不能太短
			if httpConfig.Interval < 5*time.Minute {
				return errors.New("interval cannot be less than 5 minutes")
			}

			// 创建并启动HTTP服务
			r, err := router.NewEngine(cmd.Context(), conf, httpConfig.Interval)
			if err != nil {
				return err
			}
			if err = r.Run(fmt.Sprintf(":%d", httpConfig.Port)); err != nil {
				return err
			}

			return nil
		},
	}

	serveCmd.Flags().IntVarP(&httpConfig.Port, "port", "p", 8080, "HTTP服务的监听端口。")
	serveCmd.Flags().DurationVarP(&httpConfig.Interval, "interval", "i", time.Hour, "自动刷新指南文档的间隔时间，e.g `1h或15m`。")

	return serveCmd
}
