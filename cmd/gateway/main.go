package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"resume-folio/api/router"
	"resume-folio/config"
	"resume-folio/deployer"
	_ "resume-folio/docs" // swag generated package
	"resume-folio/generator"
	"resume-folio/internal/logger"
	"resume-folio/services"
)

// @title           Resume Folio Gateway API
// @version         1.0
// @description     Gateway turning uploaded resumes into deployable portfolio sites
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	gen := generator.NewClient(cfg)
	pipeline := generator.NewPipeline(gen, cfg.Generation.ChunkSize)

	dep, err := deployer.New(cfg.Deploy)
	if err != nil {
		log.Fatal(err)
	}

	svc := services.NewSiteService(pipeline, dep)
	r := router.New(svc)

	logger.Log.Infof(
		"gateway listening addr=%s backend=%s model=%s provider=%s key_configured=%t",
		cfg.Server.Address,
		cfg.Generation.Backend,
		gen.ModelName(),
		cfg.Deploy.Provider,
		cfg.GenerationKeyConfigured(),
	)

	handler := cors.AllowAll().Handler(r)
	if err := http.ListenAndServe(cfg.Server.Address, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
