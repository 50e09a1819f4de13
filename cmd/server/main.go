package main

import (
	"embed"
	"io/fs"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/config"
	"github.com/rsfinance/rsfinance-service/pkg/logger"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	app, err := bootstrap(cfg)
	if err != nil {
		logger.Fatalf("Failed to bootstrap: %v", err)
	}
	defer app.shutdown()

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	registerRoutes(r, cfg, app)
	registerStatic(r)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// registerStatic serves the embedded back-office SPA. Unknown paths fall
// back to index.html for client-side routing.
func registerStatic(r *gin.Engine) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return
	}

	serveIndex := func(c *gin.Context) {
		data, readErr := fs.ReadFile(staticFS, "index.html")
		if readErr != nil {
			c.String(404, "index.html not found")
			return
		}
		c.Data(200, "text/html; charset=utf-8", data)
	}

	r.GET("/", serveIndex)

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path[1:]

		data, readErr := fs.ReadFile(staticFS, path)
		if readErr != nil {
			serveIndex(c)
			return
		}

		contentType := "application/octet-stream"
		if len(path) > 3 {
			switch path[len(path)-3:] {
			case ".js":
				contentType = "application/javascript"
			case "css":
				contentType = "text/css"
			case "tml":
				contentType = "text/html"
			case "son":
				contentType = "application/json"
			case "svg":
				contentType = "image/svg+xml"
			case "png":
				contentType = "image/png"
			case "ico":
				contentType = "image/x-icon"
			}
		}
		c.Data(200, contentType, data)
	})
}
