package guide

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToTxtFormat(t *testing.T) {
	base := localMillis(0, 0)
	doc := Annotate(&GuideDocument{
		StartTime: base,
		EndTime:   base + 5400000,
		Rows: []ChannelRow{
			{
				Channel: Channel{ID: "ch1", Number: 1, Name: "综合频道"},
				Programs: []Program{
					{ID: "p1", Name: "午间新闻", StartTime: base + 1800000, EndTime: base + 4500000},
				},
			},
		},
	})

	content, err := ToTxtFormat(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, 2)
	// 第一行为时间轴刻度
	require.Equal(t, "00:00 | 00:30 | 01:00", lines[0])
	// 之后每个节目一行
	require.Equal(t, "综合频道,[1+2),午间新闻,00:30-01:15", lines[1])
}

func TestToJSONFormat(t *testing.T) {
	doc := Annotate(testDoc())

	content, err := ToJSONFormat(doc)
	require.NoError(t, err)

	// 生成的内容可以解码回同样的文档
	var decoded GuideDocument
	require.NoError(t, json.Unmarshal([]byte(content), &decoded))
	require.Equal(t, *doc, decoded)
}

func TestRender_NoGuideData(t *testing.T) {
	_, err := ToTxtFormat(nil)
	require.Error(t, err)

	_, err = ToJSONFormat(&GuideDocument{})
	require.Error(t, err)
}
