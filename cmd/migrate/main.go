package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/gestaodocs/gestaodocs-api/pkg/config"
)

// Aplica as migrações SQL de ./migrations. Uso: migrate [up|down]
func main() {
	migrationsDir := flag.String("dir", "migrations", "diretório com os arquivos de migração")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("carregar configuração: %v", err)
	}

	if err := runMigration(action, *migrationsDir, cfg.DB.ConnectionString()); err != nil {
		log.Fatalf("migração %s falhou: %v", action, err)
	}

	log.Printf("migração %s concluída", action)
}

func runMigration(action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolver caminho %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("criar instância migrate: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		return fmt.Errorf("ação desconhecida %q (use up ou down)", action)
	}
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
