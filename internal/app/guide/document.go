package guide

// GuideDocument 一次获取的节目指南文档，start_time/end_time限定可见时间轴的范围
type GuideDocument struct {
	StartTime int64        `json:"start_time"` // 时间轴起始时间（毫秒时间戳）
	EndTime   int64        `json:"end_time"`   // 时间轴结束时间（毫秒时间戳），必须大于起始时间
	Rows      []ChannelRow `json:"rows"`       // 频道行列表
}

// ChannelRow 单个频道及其节目列表，节目按开始时间升序排列（由数据源保证）
type ChannelRow struct {
	Channel  Channel   `json:"channel"`  // 频道信息
	Programs []Program `json:"programs"` // 节目列表
}

// Channel 频道的标识和展示信息
type Channel struct {
	ID          string `json:"id"`                    // 频道Id
	Number      int    `json:"number"`                // 频道号
	Name        string `json:"name"`                  // 频道名称
	Description string `json:"description,omitempty"` // 频道描述
}

// Program 节目单条目
type Program struct {
	ID          string `json:"id"`                    // 节目Id
	Name        string `json:"name"`                  // 节目名称
	Description string `json:"description,omitempty"` // 节目描述
	StartTime   int64  `json:"start_time"`            // 开始时间（毫秒时间戳）
	EndTime     int64  `json:"end_time"`              // 结束时间（毫秒时间戳）
	Duration    int    `json:"duration"`              // 时长（分钟）

	// TruncatedRight 数据源中存在但当前未使用的字段，原样透传
	TruncatedRight bool `json:"truncated_right,omitempty"`

	// 以下两个字段由Annotate()计算填充，输入文档中的已有值会被忽略并覆盖
	GridColumnStart    int `json:"grid_column_start"`   // 节目起始所在的列索引（从0开始，可能为负）
	NormalizedDuration int `json:"normalized_duration"` // 节目占用的整列数，最小为1
}
