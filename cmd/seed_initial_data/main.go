package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"medread/cmd/seed_initial_data/internal/seedmodels"
	"medread/internal/config"
	"medread/internal/database"
	"medread/internal/domain"
	"medread/internal/logger"
	"medread/internal/repository"
	"medread/internal/service"
	"medread/internal/util"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "config/seed_data/demo_catalog.json"

// seeder creates demo accounts with their catalogs. Users that already exist are left alone.
type seeder struct {
	userRepo      domain.UserRepository
	imageService  service.ImageService
	folderService service.DriveFolderService
	txManager     domain.TransactionManager
	baseDir       string
	readFile      func(name string) ([]byte, error)
	log           *zap.Logger
}

func main() {
	seedFile := flag.String("file", defaultSeedFilePath, "path to the seed JSON file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
	}
	var users []seedmodels.SeedUser
	if err := json.Unmarshal(byteValue, &users); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("users", len(users)))

	imageRepo := repository.NewSQLXImageRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	s := &seeder{
		userRepo:      repository.NewSQLXUserRepository(db),
		imageService:  service.NewImageService(imageRepo, nil, 0),
		folderService: service.NewDriveFolderService(repository.NewSQLXDriveFolderRepository(db), imageRepo, txManager, nil),
		txManager:     txManager,
		baseDir:       filepath.Dir(*seedFile),
		readFile:      os.ReadFile,
		log:           log,
	}

	for _, su := range users {
		if err := s.seedUser(ctx, su); err != nil {
			log.Error("Error seeding user, transaction rolled back", zap.String("email", su.Email), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

func (s *seeder) seedUser(ctx context.Context, su seedmodels.SeedUser) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.GetUserByEmail(ctx, su.Email)
		if err != nil {
			return fmt.Errorf("error checking user %s: %w", su.Email, err)
		}
		if existing != nil {
			s.log.Info("User exists, skipping", zap.String("email", su.Email), zap.String("user_id", existing.ID))
			return nil
		}

		user := &domain.User{
			ID:        util.NewPrefixedID("user"),
			Email:     su.Email,
			Name:      su.Name,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", su.Email, err)
		}

		for _, sf := range su.Folders {
			if _, err := s.folderService.AddFolder(ctx, user.ID, sf.DriveFolderID, sf.FolderName, sf.Category); err != nil {
				return fmt.Errorf("failed to register folder %s: %w", sf.FolderName, err)
			}
		}

		for _, si := range su.Images {
			data, err := s.readFile(filepath.Join(s.baseDir, si.File))
			if err != nil {
				return fmt.Errorf("failed to read image %s: %w", si.File, err)
			}
			if _, err := s.imageService.UploadImage(ctx, user.ID, service.UploadImageInput{
				Filename:    filepath.Base(si.File),
				ContentType: si.ContentType,
				Category:    si.Category,
				Data:        data,
			}); err != nil {
				return fmt.Errorf("failed to store image %s: %w", si.File, err)
			}
		}

		s.log.Info("Seeded user",
			zap.String("email", su.Email),
			zap.Int("folders", len(su.Folders)),
			zap.Int("images", len(su.Images)),
		)
		return nil
	})
}
