package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dgarza/pluma/config"
	"github.com/dgarza/pluma/utils"
)

// ResourceLog records every API request into a per-resource rolling log
// file: post traffic goes to the posts log, everything else to the authors
// log.
func ResourceLog(cfg config.AppConfig) gin.HandlerFunc {
	authorLog := utils.NewRollingFileLogger(cfg.AuthorLogPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	postLog := utils.NewRollingFileLogger(cfg.PostLogPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)

	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		sink := authorLog
		if strings.Contains(ctx.Request.URL.Path, "/posts") {
			sink = postLog
		}
		sink.Infow("request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start),
			"ip", ctx.ClientIP(),
			"request_id", ctx.GetString("request_id"),
		)
	}
}
