package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// slowThreshold marks requests worth a second look; every derivation here is
// an in-memory slice scan, so anything slower points at a regression.
const slowThreshold = 200 * time.Millisecond

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > slowThreshold {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
