// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	audiovisualsfeature "github.com/acervodigital/oedhub/internal/app/features/audiovisuals"
	catalogfeature "github.com/acervodigital/oedhub/internal/app/features/catalog"
	errorsfeature "github.com/acervodigital/oedhub/internal/app/features/errors"
	healthfeature "github.com/acervodigital/oedhub/internal/app/features/health"
	importsfeature "github.com/acervodigital/oedhub/internal/app/features/imports"
	learningobjectsfeature "github.com/acervodigital/oedhub/internal/app/features/learningobjects"
	loginfeature "github.com/acervodigital/oedhub/internal/app/features/login"
	skillsfeature "github.com/acervodigital/oedhub/internal/app/features/skills"
	audiovisualstore "github.com/acervodigital/oedhub/internal/app/store/audiovisuals"
	learningobjectstore "github.com/acervodigital/oedhub/internal/app/store/learningobjects"
	skillstore "github.com/acervodigital/oedhub/internal/app/store/skills"
	"github.com/acervodigital/oedhub/internal/app/system/auth"
	"github.com/acervodigital/oedhub/internal/app/system/importer"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup
// and Startup have completed. The hub mounts the public catalog surface,
// the admin CRUD and import APIs, session endpoints, health and the
// thumbnail file server.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := auth.NewSessionManager(appCfg.SessionKey, secure, logger)

	// A plaintext configured password is hashed once here; a value that
	// already looks like a bcrypt hash is used as-is.
	adminHash := appCfg.AdminPassword
	if adminHash != "" && !strings.HasPrefix(adminHash, "$2") {
		var err error
		adminHash, err = loginfeature.HashPassword(adminHash)
		if err != nil {
			logger.Error("hash admin password", zap.Error(err))
			return nil, err
		}
	}

	// Stores and the shared import runner.
	objects := learningobjectstore.New(deps.MongoDatabase)
	items := audiovisualstore.New(deps.MongoDatabase)
	skills := skillstore.New(deps.MongoDatabase)

	runner := &importer.Runner{
		Objects:         objects,
		Items:           items,
		Skills:          skills,
		DefaultImageURL: appCfg.DefaultImageURL,
		Log:             logger,
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Thumbnails with pre-compressed file support (gzip/brotli)
	r.Handle("/thumbs/*", fileserver.Handler("/thumbs", appCfg.ThumbsDir))

	// Session endpoints at the root: /login, /logout.
	loginHandler := loginfeature.NewHandler(sessionMgr, appCfg.AdminEmail, adminHash, errLog, logger)
	r.Mount("/", loginfeature.Routes(loginHandler))

	// Public catalog browsing
	catalogHandler := catalogfeature.NewHandler(objects, items, errLog, logger)
	r.Mount("/api/catalog", catalogfeature.Routes(catalogHandler))

	skillsHandler := skillsfeature.NewHandler(skills, errLog, logger)
	r.Mount("/api/skills", skillsfeature.Routes(skillsHandler))

	// Admin CRUD
	oedHandler := learningobjectsfeature.NewHandler(objects, errLog, logger)
	r.Mount("/api/oeds", learningobjectsfeature.Routes(oedHandler, sessionMgr))

	avHandler := audiovisualsfeature.NewHandler(items, errLog, logger)
	r.Mount("/api/audiovisuals", audiovisualsfeature.Routes(avHandler, sessionMgr))

	// Imports
	importsHandler := importsfeature.NewHandler(runner, appCfg.BNCCSQLitePath, errLog, logger)
	r.Mount("/api/imports", importsfeature.Routes(importsHandler, sessionMgr))

	return r, nil
}
