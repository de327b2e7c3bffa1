package guide

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// localMillis 返回本地时区某个时刻的毫秒时间戳，保证标签断言与运行环境的时区无关
func localMillis(hour, min int) int64 {
	return time.Date(2025, 6, 1, hour, min, 0, 0, time.Local).UnixMilli()
}

func TestBuildAxis_LabelStrings(t *testing.T) {
	// 从本地午夜开始的90分钟窗口
	labels := BuildAxis(localMillis(0, 0), localMillis(1, 30))
	require.Equal(t, []string{"00:00", "00:30", "01:00"}, labels)

	// 未对齐到整点/半点的起始时间原样作为第一个刻度
	labels = BuildAxis(localMillis(20, 15), localMillis(21, 15))
	require.Equal(t, []string{"20:15", "20:45"}, labels)
}

func TestBuildAxis_LabelCount(t *testing.T) {
	base := localMillis(8, 0)

	tests := []struct {
		name    string
		spanMin int64
		want    int
	}{
		{"对齐的90分钟", 90, 3},
		{"对齐的30分钟", 30, 1},
		{"未对齐的45分钟", 45, 2}, // 最后一列部分超出范围，但仍然输出
		{"未对齐的1分钟", 1, 1},
		{"整天", 24 * 60, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := BuildAxis(base, base+tt.spanMin*60*1000)
			require.Len(t, labels, tt.want)
		})
	}
}

func TestBuildAxis_Degenerate(t *testing.T) {
	base := localMillis(12, 0)

	// start == end
	require.Empty(t, BuildAxis(base, base))
	// start > end
	require.Empty(t, BuildAxis(base, base-1))
	// 文档中字段缺失时解码出的零值
	require.Empty(t, BuildAxis(0, 0))
}
