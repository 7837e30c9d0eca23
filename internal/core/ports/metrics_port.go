package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordCacheLookup(cache string, hit bool)
	RecordQuotes(policy string, count int)
}
