package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/amathumitha2210/Customer-Management/internal/config"
	"github.com/amathumitha2210/Customer-Management/internal/importer"
	"github.com/amathumitha2210/Customer-Management/internal/pkg/db"
	"github.com/amathumitha2210/Customer-Management/internal/pkg/log"
	"github.com/amathumitha2210/Customer-Management/internal/repository"
	th "github.com/amathumitha2210/Customer-Management/internal/transport/http"
	"github.com/amathumitha2210/Customer-Management/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Error.Fatalf("db: %v", err)
	}
	defer db.Disconnect(client)

	repo := repository.NewMongoCustomerRepo(client.Database(cfg.MongoDB))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Error.Fatalf("indexes: %v", err)
	}
	cancel()

	imp := importer.New(repo)
	uc := usecase.NewCustomerUC(repo, imp)
	h := th.NewHandler(uc)
	r := th.NewRouter(h, cfg.CORSAllow)

	addr := ":" + cfg.Port
	log.Info.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}
