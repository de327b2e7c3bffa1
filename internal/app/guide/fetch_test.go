package guide

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testGuideJSON = `{
  "start_time": 0,
  "end_time": 5400000,
  "rows": [
    {
      "channel": {"id": "ch1", "number": 1, "name": "综合频道"},
      "programs": [
        {"id": "p1", "name": "午间新闻", "start_time": 1800000, "end_time": 4500000, "duration": 45}
      ]
    },
    {
      "channel": {"id": "ch2", "number": 2, "name": "电影频道测试"},
      "programs": []
    }
  ]
}`

// newTestClient 创建指向httptest服务的指南客户端
func newTestClient(t *testing.T, handler http.HandlerFunc, chExcludeRule *regexp.Regexp) (*Client, func()) {
	t.Helper()

	server := httptest.NewServer(handler)
	client, err := NewClient(server.Client(), strings.TrimPrefix(server.URL, "http://"), map[string]string{
		"Accept": "application/json",
	}, chExcludeRule)
	require.NoError(t, err)

	return client, server.Close
}

func TestGetGuideDocument(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/guide", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(testGuideJSON))
	}, nil)
	defer closeFn()

	doc, err := client.GetGuideDocument(context.Background())
	require.NoError(t, err)

	require.EqualValues(t, 0, doc.StartTime)
	require.EqualValues(t, 5400000, doc.EndTime)
	require.Len(t, doc.Rows, 2)
	require.Equal(t, "综合频道", doc.Rows[0].Channel.Name)
	require.Len(t, doc.Rows[0].Programs, 1)
	require.EqualValues(t, 1800000, doc.Rows[0].Programs[0].StartTime)
	// 派生字段在获取阶段保持零值，由Annotate()填充
	require.Zero(t, doc.Rows[0].Programs[0].GridColumnStart)
	require.Zero(t, doc.Rows[0].Programs[0].NormalizedDuration)
}

func TestGetGuideDocument_ExcludeRule(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testGuideJSON))
	}, regexp.MustCompile("^.+?测试$"))
	defer closeFn()

	doc, err := client.GetGuideDocument(context.Background())
	require.NoError(t, err)

	// 匹配排除规则的频道被过滤
	require.Len(t, doc.Rows, 1)
	require.Equal(t, "综合频道", doc.Rows[0].Channel.Name)
}

func TestGetGuideDocument_HttpError(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)
	defer closeFn()

	_, err := client.GetGuideDocument(context.Background())
	require.ErrorContains(t, err, "http status code: 500")
}

func TestGetGuideDocument_EmptyRows(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"start_time": 0, "end_time": 5400000, "rows": []}`))
	}, nil)
	defer closeFn()

	_, err := client.GetGuideDocument(context.Background())
	require.ErrorIs(t, err, ErrGuideIsEmpty)
}

func TestNewClient_EmptyServerHost(t *testing.T) {
	_, err := NewClient(nil, "", nil, nil)
	require.Error(t, err)
}
