// Command importbncc seeds the curriculum-skill reference data from the
// legacy BNCC SQLite database.
//
// Usage:
//
//	importbncc --db bncc.sqlite --mongo-uri mongodb://localhost:27017
//
// Without --db, a few conventional locations are probed.
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
	"github.com/acervodigital/oedhub/internal/app/system/sqlitesrc"
	"github.com/acervodigital/oedhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var dbCandidates = []string{
	"bncc.sqlite",
	"bncc.db",
	"data/bncc.sqlite",
	"data/bncc.db",
}

func main() {
	var (
		dbPath   = flag.String("db", "", "legacy BNCC SQLite database")
		mongoURI = flag.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
		mongoDB  = flag.String("mongo-database", "oedhub", "MongoDB database name")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*dbPath, *mongoURI, *mongoDB, logger); err != nil {
		logger.Error("import failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(dbPath, mongoURI, mongoDB string, logger *zap.Logger) error {
	path := dbPath
	var err error
	if path == "" {
		path, err = sqlitesrc.Locate(dbCandidates...)
	} else {
		path, err = sqlitesrc.Locate(path)
	}
	if err != nil {
		return err
	}

	rows, err := sqlitesrc.LoadSkills(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

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
		Objects: learningobjectstore.New(db),
		Items:   audiovisualstore.New(db),
		Skills:  skillstore.New(db),
		Log:     logger,
	}

	res, err := runner.ImportSkills(ctx, rows)
	if err != nil {
		return fmt.Errorf("import skills: %w", err)
	}

	logger.Info("import finished",
		zap.String("source", path),
		zap.Int("total", res.TotalRows),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	for _, re := range res.Errors {
		logger.Warn("row rejected", zap.Int("row", re.Row), zap.String("reason", re.Reason))
	}
	return nil
}
