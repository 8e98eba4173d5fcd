package router

import (
	"mzip_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	EncodeHandler *handler.EncodeHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		v1.POST("/encode", d.EncodeHandler.Encode)

		runs := v1.Group("/runs")
		{
			runs.GET("", d.EncodeHandler.ListRuns)
			runs.GET("/:name", d.EncodeHandler.GetRun)
		}
	}
}
