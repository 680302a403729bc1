package app

import (
	"net/http"

	"athlex/internal/service/profile"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Routes struct {
	r *gin.Engine
}

func NewRoutes(r *gin.Engine) *Routes {
	return &Routes{
		r: r,
	}
}

func (o *Routes) setupInfraRoutes() {
	o.r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	o.r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	o.r.GET("/docs", docsHandler)
	o.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func docsHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	html := `<!DOCTYPE html>
<html>
<head><title>athlex API</title></head>
<body>
<h1>athlex profile builder API</h1>
<p>See <a href="/swagger/index.html">swagger</a> for the full surface.</p>
</body>
</html>`
	c.String(http.StatusOK, html)
}

// setupProfileRoutes registers the profile builder endpoints
func (o *Routes) setupProfileRoutes(pv *profile.Service) {
	h := profile.NewHandler(pv)

	v1 := o.r.Group("/api/v1")
	{
		v1.POST("/profiles", h.CreateSession)

		p := v1.Group("/profiles/:id")
		{
			p.GET("", h.GetSnapshot)
			p.PATCH("/fields", h.SetField)
			p.PATCH("/units", h.SetUnit)
			p.PATCH("/nationality", h.SetNationality)

			p.POST("/sports/toggle", h.ToggleSport)
			p.PATCH("/stats-sport", h.SetStatsSport)
			p.PUT("/stats/:sport", h.SetStatField)

			p.POST("/languages/toggle", h.ToggleLanguage)
			p.POST("/tags/toggle", h.ToggleTag)

			p.POST("/participations/form", h.OpenParticipationForm)
			p.DELETE("/participations/form", h.CancelParticipationForm)
			p.POST("/participations", h.AddParticipation)
			p.PATCH("/participations/:recordId", h.UpdateParticipation)
			p.DELETE("/participations/:recordId", h.RemoveParticipation)
			p.POST("/participations/:recordId/edit", h.BeginEditParticipation)

			p.POST("/achievements/form", h.OpenAchievementForm)
			p.DELETE("/achievements/form", h.CancelAchievementForm)
			p.POST("/achievements", h.AddAchievement)
			p.PATCH("/achievements/:recordId", h.UpdateAchievement)
			p.DELETE("/achievements/:recordId", h.RemoveAchievement)
			p.POST("/achievements/:recordId/edit", h.BeginEditAchievement)

			p.POST("/media", h.AddMedia)
			p.PATCH("/media/:mediaId", h.UpdateMedia)
			p.DELETE("/media/:mediaId", h.RemoveMedia)

			p.PUT("/photo", h.SetProfilePicture)
			p.DELETE("/photo", h.ClearProfilePicture)
			p.PUT("/identity-document", h.SetIdentityDocument)
			p.DELETE("/identity-document", h.ClearIdentityDocument)

			p.POST("/navigation/next", h.GoNext)
			p.POST("/navigation/previous", h.GoPrevious)
			p.POST("/navigation/jump", h.JumpTo)

			p.GET("/preview", h.GetPreview)
			p.POST("/submit", h.Submit)
		}
	}
}
