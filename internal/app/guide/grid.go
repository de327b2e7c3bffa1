package guide

import "math"

// Annotate 将文档中每个节目的绝对时间区间换算为网格坐标
// 返回标注后的新文档，频道行和节目均为副本，输入文档不会被修改。
// 计算是纯函数：相同输入的多次调用产生完全相同的结果。
func Annotate(doc *GuideDocument) *GuideDocument {
	if doc == nil {
		return nil
	}

	out := *doc
	out.Rows = make([]ChannelRow, len(doc.Rows))
	for i, row := range doc.Rows {
		newRow := row
		newRow.Programs = make([]Program, len(row.Programs))
		for j, program := range row.Programs {
			program.GridColumnStart = gridColumnStart(program.StartTime, doc.StartTime)
			program.NormalizedDuration = normalizedDuration(program.StartTime, program.EndTime)
			newRow.Programs[j] = program
		}
		out.Rows[i] = newRow
	}
	return &out
}

// gridColumnStart 计算节目起始所在的列索引
// 相对时间轴原点向下取整，不做裁剪：早于原点的节目会得到负索引，
// 超出最后一列的节目索引会大于等于时间轴长度，是否可见由渲染层决定。
func gridColumnStart(progStartMs, axisStartMs int64) int {
	offset := progStartMs - axisStartMs
	col := offset / slotMillis
	// Go的整数除法向零截断，负偏移且未对齐时需要再减一才是向下取整
	if offset%slotMillis != 0 && offset < 0 {
		col--
	}
	return int(col)
}

// normalizedDuration 将节目时长换算为占用的整列数
// 四舍五入到最近的整列，且最小为1：时长为零或为负的脏数据也不会产生零宽度的节目块。
func normalizedDuration(startMs, endMs int64) int {
	cols := int(math.Round(float64(endMs-startMs) / float64(slotMillis)))
	if cols < 1 {
		cols = 1
	}
	return cols
}
