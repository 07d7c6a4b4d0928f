package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"aerotrav/internal/handler/middleware"
	"aerotrav/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	var logCfg config.LogConfig
	if err := envconfig.Process("", &logCfg); err != nil {
		slog.Error("ログ設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(logCfg).GetSlogLogger()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("DB設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, logger, *dir, *bin, dbCfg.BuildDSN()); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, logger *slog.Logger, dir, bin, dsn string) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dsn,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション適用", "file", f.Name)
	}
	logger.Info("マイグレーション完了",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
	return nil
}
