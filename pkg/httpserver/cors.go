package httpserver

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type CorsSettings struct {
	Enabled            bool          `cfg:"enabled"              default:"false"`
	AllowOriginPattern string        `cfg:"allow_origin_pattern" default:".*"`
	AllowHeaders       []string      `cfg:"allow_headers"        default:"Origin,Content-Type,Content-Length"`
	AllowMethods       []string      `cfg:"allow_methods"        default:"GET,POST,PATCH,DELETE"`
	AllowCredentials   bool          `cfg:"allow_credentials"    default:"false"`
	MaxAge             time.Duration `cfg:"max_age"              default:"12h"`
}

func configureCors(settings CorsSettings) ([]gin.HandlerFunc, error) {
	if !settings.Enabled {
		return nil, nil
	}

	validOrigin, err := regexp.Compile(settings.AllowOriginPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid cors origin pattern %s: %w", settings.AllowOriginPattern, err)
	}

	return []gin.HandlerFunc{cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return validOrigin.MatchString(origin)
		},
		AllowHeaders:     settings.AllowHeaders,
		AllowMethods:     settings.AllowMethods,
		AllowCredentials: settings.AllowCredentials,
		MaxAge:           settings.MaxAge,
	})}, nil
}
