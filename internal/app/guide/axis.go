package guide

import "time"

// SlotInterval 时间轴上每一列代表的固定时长
const SlotInterval = 30 * time.Minute

// slotMillis 固定时长对应的毫秒数
const slotMillis = int64(SlotInterval / time.Millisecond)

// BuildAxis 生成时间轴的刻度标签列表
// 从startMs开始每隔一个SlotInterval输出一个HH:MM格式的标签，直到当前时刻不再小于endMs为止。
// 标签数量等于ceil((endMs-startMs)/SlotInterval)：跨度未对齐时最后一列会超出结束时间，
// 保证时间轴完整覆盖请求的范围。startMs >= endMs时返回空列表。
func BuildAxis(startMs, endMs int64) []string {
	labels := make([]string, 0)
	if startMs >= endMs {
		return labels
	}

	for cur := startMs; cur < endMs; cur += slotMillis {
		labels = append(labels, time.UnixMilli(cur).Format("15:04"))
	}
	return labels
}
