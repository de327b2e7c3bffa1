package guide

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ToJSONFormat 将已标注的指南文档转换为JSON格式内容
func ToJSONFormat(doc *GuideDocument) (string, error) {
	if doc == nil || len(doc.Rows) == 0 {
		return "", errors.New("no guide data")
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// ToTxtFormat 将已标注的指南文档转换为txt格式内容
// 第一行为时间轴刻度，之后每个节目一行：频道名、网格位置[列+列数)、节目名和起止时间。
func ToTxtFormat(doc *GuideDocument) (string, error) {
	if doc == nil || len(doc.Rows) == 0 {
		return "", errors.New("no guide data")
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(BuildAxis(doc.StartTime, doc.EndTime), " | "))
	sb.WriteString("\n")

	for _, row := range doc.Rows {
		for _, program := range row.Programs {
			line := fmt.Sprintf("%s,[%d+%d),%s,%s-%s\n",
				row.Channel.Name, program.GridColumnStart, program.NormalizedDuration,
				program.Name, formatClock(program.StartTime), formatClock(program.EndTime))
			sb.WriteString(line)
		}
	}
	return sb.String(), nil
}

// formatClock 毫秒时间戳转HH:MM
func formatClock(ms int64) string {
	return time.UnixMilli(ms).Format("15:04")
}
