// Package server 提供无状态的预览服务：每个请求都在全新会话中执行。
package server

import (
	"net/http"
	"time"

	"termfolio/internal/content"
	"termfolio/internal/export"
	"termfolio/internal/logger"
	"termfolio/internal/session"
	"termfolio/internal/tui/render"

	"github.com/gin-gonic/gin"
)

// Options 配置预览服务。
type Options struct {
	Content content.Document
	Prompt  render.Prompt
	// Static 为导出目录，非空时未匹配的路径按静态文件处理。
	Static  string
	Suggest bool
	Logger  *logger.LogEntry
}

type submitRequest struct {
	Input string `json:"input"`
}

type submitResponse struct {
	SessionID string          `json:"session_id"`
	Entries   []session.Entry `json:"entries"`
	Effect    session.Effect  `json:"effect"`
}

// NewRouter 构造 gin 路由。
func NewRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Named("server")
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/commands", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"commands": session.CommandNames(),
			"help":     session.Help,
		})
	})
	api.POST("/submit", func(c *gin.Context) {
		var req submitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s := session.New(session.Options{Content: opts.Content, Suggest: opts.Suggest})
		seed := s.Transcript()
		eff := s.Submit(req.Input)
		c.JSON(http.StatusOK, submitResponse{
			SessionID: s.ID(),
			Entries:   s.Since(seed[len(seed)-1].ID),
			Effect:    eff,
		})
	})
	api.GET("/blocks/:name", func(c *gin.Context) {
		b, ok := opts.Content.Block(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "block not found"})
			return
		}
		c.JSON(http.StatusOK, b)
	})
	api.GET("/pages/:name", func(c *gin.Context) {
		name := c.Param("name")
		found := false
		for _, p := range export.Pages() {
			if p == name {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		page := export.BuildPage(opts.Content, name)
		c.String(http.StatusOK, export.RenderPage(page, export.Options{Prompt: opts.Prompt}))
	})

	if opts.Static != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(opts.Static))))
	}
	return r
}

// New 返回监听 addr 的 HTTP 服务。
func New(addr string, opts Options) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func requestLogger(log *logger.LogEntry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithField("method", c.Request.Method).
			WithField("path", c.Request.URL.Path).
			WithField("status", c.Writer.Status()).
			WithField("latency", time.Since(start).Round(time.Microsecond)).
			Debug("request served")
	}
}
