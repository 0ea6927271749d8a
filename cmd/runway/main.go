package main

import (
	"fmt"
	"os"

	"github.com/diillson/runway-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/runway-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/runway-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/runway-dashboard-go/internal/adapter/driven/notify"
	"github.com/diillson/runway-dashboard-go/internal/adapter/driven/storage"
	"github.com/diillson/runway-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/runway-dashboard-go/internal/application/usecase"
	"github.com/diillson/runway-dashboard-go/internal/domain/repository"
	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/diillson/runway-dashboard-go/pkg/console"
	"github.com/diillson/runway-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsLoader := aws.NewConfigLoader()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	cloudRepo := aws.NewCloudCostRepository(awsLoader)
	consoleImpl := console.NewConsole()

	storageFactory := func(profile, region string) repository.StorageRepository {
		return storage.NewS3Repository(awsLoader, profile, region)
	}

	// Inicializa o caso de uso
	projectionUseCase := usecase.NewProjectionUseCase(
		exportRepo,
		configRepo,
		cloudRepo,
		storageFactory,
		func(cfg types.EmailConfig) repository.NotificationRepository { return notify.NewEmailRepository(cfg) },
		consoleImpl,
	)

	app.SetProjectionUseCase(projectionUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
