// Command gateway serves the SPA dev server and osidou-web behind one origin
// so the session cookie and websocket work without CORS during development.
package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	webURL := getEnv("OSIDOU_WEB_URL", "http://localhost:8080")
	viteURL := getEnv("VITE_DEV_URL", "http://localhost:5173")
	gatewayPort := getEnv("GATEWAY_PORT", "3000")

	log.Printf("Starting dev gateway on port %s", gatewayPort)
	log.Printf("osidou-web: %s", webURL)
	log.Printf("vite: %s", viteURL)

	webTarget, err := url.Parse(webURL)
	if err != nil {
		log.Fatalf("Invalid OSIDOU_WEB_URL: %v", err)
	}
	viteTarget, err := url.Parse(viteURL)
	if err != nil {
		log.Fatalf("Invalid VITE_DEV_URL: %v", err)
	}

	webProxy := httputil.NewSingleHostReverseProxy(webTarget)
	viteProxy := httputil.NewSingleHostReverseProxy(viteTarget)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:" + gatewayPort, "http://127.0.0.1:" + gatewayPort},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	router.GET("/gateway/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Gateway OK")
	})

	// JSON API and live board -> osidou-web
	router.Any("/api/*path", func(c *gin.Context) {
		webProxy.ServeHTTP(c.Writer, c.Request)
	})
	router.GET("/ws/*path", func(c *gin.Context) {
		webProxy.ServeHTTP(c.Writer, c.Request)
	})

	// everything else (pages, assets, HMR) -> vite
	router.NoRoute(func(c *gin.Context) {
		viteProxy.ServeHTTP(c.Writer, c.Request)
	})

	addr := fmt.Sprintf(":%s", gatewayPort)
	log.Printf("Gateway listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start gateway: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
