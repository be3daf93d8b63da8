package router

import (
	"time"

	"github.com/elmenyr/resturant-alokda/internal/auth"
	"github.com/elmenyr/resturant-alokda/internal/menu"
	"github.com/elmenyr/resturant-alokda/internal/middleware"
	"github.com/elmenyr/resturant-alokda/internal/offers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the feature handlers the router wires up.
type Deps struct {
	Auth   *auth.Handler
	Offers *offers.Handler
	Menu   *menu.Handler

	// AllowOrigins for CORS; empty means same-origin only.
	AllowOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	if len(deps.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/offers", deps.Offers.ListPublic)
	r.GET("/menu", deps.Menu.Current)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.POST("/logout", deps.Auth.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), deps.Auth.Me)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/offers", deps.Offers.ListAdmin)
		admin.POST("/offers", deps.Offers.Create)
		admin.PUT("/offers/:id", deps.Offers.Update)
		admin.DELETE("/offers/:id", deps.Offers.Delete)

		admin.POST("/menu", deps.Menu.Upload)
	}

	return r
}
