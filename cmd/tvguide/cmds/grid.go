package cmds

import (
	"errors"
	"net/http"
	"os"
	"path"
	"slices"
	"time"
	"tvguide/internal/app/guide"
	"tvguide/internal/pkg/logging"
	"tvguide/internal/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	fileName = "guide"
)

var (
	supportFileFormat = []string{"txt", "json"}
	format            string
)

func NewGridCLI() *cobra.Command {
	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "获取节目指南，计算网格坐标并按指定格式生成指南文件。",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 初始化日志
			if err := logging.InitLogger(conf.Log); err != nil {
				return err
			}
			logger := zap.L()

			// 校验配置文件
			if err := conf.Validate(); err != nil {
				return err
			}

			// 创建指南客户端
			guideClient, err := guide.NewClient(&http.Client{
				Timeout: 10 * time.Second,
			}, conf.ServerHost, conf.Headers, conf.ChExcludeRule)
			if err != nil {
				return err
			}

			// 获取指南文档
			doc, err := guideClient.GetGuideDocument(cmd.Context())
			if err != nil {
				return err
			}

			// 计算每个节目的网格坐标
			annotated := guide.Annotate(doc)

			if !slices.Contains(supportFileFormat, format) {
				return errors.New("file format not support")
			}

			// 在当前目录中创建指南文件
			outFileName := fileName + "." + format
			currDir, err := util.GetCurrentAbPathByExecutable()
			if err != nil {
				return err
			}
			filePath := path.Join(currDir, outFileName)
			file, err := os.Create(filePath)
			if err != nil {
				logger.Error("Failed to create a file.", zap.Error(err))
				return err
			}
			defer file.Close()

			var content string
			switch format {
			case "txt":
				// 将标注后的指南文档转换为TXT格式
				content, err = guide.ToTxtFormat(annotated)
				if err != nil {
					return err
				}
			case "json":
				// 将标注后的指南文档转换为JSON格式
				content, err = guide.ToJSONFormat(annotated)
				if err != nil {
					return err
				}
			}

			// 将结果写入文件
			if _, err = file.WriteString(content); err != nil {
				logger.Error("Failed to write to file.", zap.Error(err))
				return err
			}

			logger.Sugar().Infof("A total of %d channel rows have been annotated, all of which have been written to the file %s.", len(annotated.Rows), outFileName)

			return nil
		},
	}

	gridCmd.Flags().StringVarP(&format, "format", "f", "json", "生成的指南文件格式，e.g `json或txt`。")

	return gridCmd
}
