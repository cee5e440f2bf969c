// Command importoeds loads the curated spreadsheets into MongoDB from
// the command line, without going through the HTTP upload endpoints.
//
// Usage:
//
//	importoeds --oeds planilha_oeds.xlsx --audiovisuals planilha_av.xlsx \
//	    --mongo-uri mongodb://localhost:27017 --mongo-database oedhub
//
// When a path flag is omitted, a handful of conventional locations are
// probed before giving up.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	audiovisualstore "github.com/acervodigital/oedhub/internal/app/store/audiovisuals"
	learningobjectstore "github.com/acervodigital/oedhub/internal/app/store/learningobjects"
	skillstore "github.com/acervodigital/oedhub/internal/app/store/skills"
	"github.com/acervodigital/oedhub/internal/app/system/importer"
	"github.com/acervodigital/oedhub/internal/app/system/timeouts"
	"github.com/acervodigital/oedhub/internal/app/system/xlsxsrc"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var oedCandidates = []string{
	"planilha_oeds.xlsx",
	"data/planilha_oeds.xlsx",
	"import/planilha_oeds.xlsx",
}

var avCandidates = []string{
	"planilha_audiovisuais.xlsx",
	"data/planilha_audiovisuais.xlsx",
	"import/planilha_audiovisuais.xlsx",
}

func main() {
	var (
		oedsPath     = flag.String("oeds", "", "learning-object spreadsheet (.xlsx)")
		avPath       = flag.String("audiovisuals", "", "audiovisual spreadsheet (.xlsx)")
		mongoURI     = flag.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
		mongoDB      = flag.String("mongo-database", "oedhub", "MongoDB database name")
		defaultImage = flag.String("default-image", "/static/img/oed-default.webp", "stock image for records without a thumbnail")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*oedsPath, *avPath, *mongoURI, *mongoDB, *defaultImage, logger); err != nil {
		logger.Error("import failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(oedsPath, avPath, mongoURI, mongoDB, defaultImage string, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Batch())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(mongoDB)
	runner := &importer.Runner{
		Objects:         learningobjectstore.New(db),
		Items:           audiovisualstore.New(db),
		Skills:          skillstore.New(db),
		DefaultImageURL: defaultImage,
		Log:             logger,
	}

	imported := 0

	if path, err := resolve(oedsPath, oedCandidates); err == nil {
		rows, err := xlsxsrc.Load(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		res, err := runner.ImportLearningObjects(ctx, rows)
		if err != nil {
			return fmt.Errorf("import learning objects: %w", err)
		}
		report(logger, "learning objects", path, res)
		imported++
	} else if oedsPath != "" {
		return err
	}

	if path, err := resolve(avPath, avCandidates); err == nil {
		rows, err := xlsxsrc.Load(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		res, err := runner.ImportAudiovisuals(ctx, rows)
		if err != nil {
			return fmt.Errorf("import audiovisuals: %w", err)
		}
		report(logger, "audiovisuals", path, res)
		imported++
	} else if avPath != "" {
		return err
	}

	if imported == 0 {
		return fmt.Errorf("no spreadsheet found; pass --oeds or --audiovisuals")
	}
	return nil
}

// resolve returns the explicit path when given, otherwise probes the
// conventional candidate locations.
func resolve(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		return xlsxsrc.Locate(explicit)
	}
	return xlsxsrc.Locate(candidates...)
}

func report(logger *zap.Logger, what, path string, res importer.Result) {
	logger.Info("import finished",
		zap.String("source", path),
		zap.String("kind", what),
		zap.Int("total", res.TotalRows),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	for _, re := range res.Errors {
		logger.Warn("row rejected", zap.Int("row", re.Row), zap.String("reason", re.Reason))
	}
}
