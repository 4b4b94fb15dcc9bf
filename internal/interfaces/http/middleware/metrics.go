package middleware

import (
	"strconv"
	"time"

	"virtual-tryon-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedPath 未命中路由时的 path 标签，避免任意 URL 撑爆标签基数
const unmatchedPath = "unmatched"

// MetricsOptions 指标中间件选项
type MetricsOptions struct {
	// PathAliases 将兼容路径折叠到主路径，同一接口只产生一组时序
	PathAliases map[string]string
	// SkipPaths 不采集的路由，例如抓取端点本身
	SkipPaths []string
}

// Metrics Prometheus 指标采集中间件
func Metrics(opts MetricsOptions) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(opts.SkipPaths))
	for _, p := range opts.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := routeLabel(c.FullPath(), opts.PathAliases)
		if _, ok := skip[path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method
		if size := c.Request.ContentLength; size > 0 {
			metrics.HTTPRequestSize.WithLabelValues(method, path).Observe(float64(size))
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size > 0 {
			metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}

func routeLabel(fullPath string, aliases map[string]string) string {
	if fullPath == "" {
		return unmatchedPath
	}
	if canonical, ok := aliases[fullPath]; ok {
		return canonical
	}
	return fullPath
}
