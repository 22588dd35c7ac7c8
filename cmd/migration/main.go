package main

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/core/admissions"
	"hospital-service/internal/app/services/core/audit"
	"hospital-service/internal/app/services/core/labs"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/app/services/core/wards"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var commandTimeout = utils.GetEnvDuration("MIGRATION_COMMAND_TIMEOUT", time.Minute)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig, driverConfig)

	rootCmd := &cobra.Command{
		Use:   "hospital-migration",
		Short: "Operator tasks for the hospital service database",
	}

	rootCmd.AddCommand(indexesCmd(driverConfig, log))
	rootCmd.AddCommand(seedAdminCmd(driverConfig, internalConfig, log))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func indexesCmd(driverConfig *config.DriverConfig, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create every mongo index the service relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			client := database.NewMongoDB(driverConfig)
			defer client.Disconnect(context.Background())

			dbName := driverConfig.MongoDB.DbName
			repositories := map[string]indexer{
				constvars.MongoCollectionUsers:             users.NewUserMongoRepository(client, dbName),
				constvars.MongoCollectionPatients:          patients.NewPatientMongoRepository(client, dbName),
				constvars.MongoCollectionWards:             wards.NewWardMongoRepository(client, dbName),
				constvars.MongoCollectionAdmissions:        admissions.NewAdmissionMongoRepository(client, dbName),
				constvars.MongoCollectionLabTests:          labs.NewLabTestMongoRepository(client, dbName),
				constvars.MongoCollectionTestRegistrations: labs.NewTestRegistrationMongoRepository(client, dbName),
				constvars.MongoCollectionTestResults:       labs.NewTestResultMongoRepository(client, dbName),
				constvars.MongoCollectionAuditLogs:         audit.NewAuditLogMongoRepository(client, dbName),
			}

			for collection, repository := range repositories {
				err := repository.EnsureIndexes(ctx)
				if err != nil {
					return err
				}
				log.WithField("collection", collection).Info("Indexes ensured")
			}
			return nil
		},
	}
}

func seedAdminCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first admin account when it does not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := internalConfig.Seed
			if password == "" {
				password = seed.AdminPassword
			}
			if len(password) < 8 {
				return errors.New("admin password must be at least 8 characters, set SEED_ADMIN_PASSWORD or --password")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			client := database.NewMongoDB(driverConfig)
			defer client.Disconnect(context.Background())

			userRepository := users.NewUserMongoRepository(client, driverConfig.MongoDB.DbName)
			err := userRepository.EnsureIndexes(ctx)
			if err != nil {
				return err
			}

			email := strings.ToLower(strings.TrimSpace(seed.AdminEmail))
			existing, err := userRepository.FindByEmailOrUsername(ctx, email, seed.AdminUsername)
			if err != nil {
				return err
			}
			if existing != nil {
				log.WithFields(logrus.Fields{
					"username": existing.Username,
					"email":    existing.Email,
				}).Info("Admin account already exists, nothing to do")
				return nil
			}

			passwordHash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}

			admin := &models.User{
				Username:     seed.AdminUsername,
				FullName:     seed.AdminFullName,
				Email:        email,
				PasswordHash: passwordHash,
				Role:         constvars.RoleAdmin,
				IsActive:     true,
			}
			admin.SetCreatedAtUpdatedAt()

			userID, err := userRepository.CreateUser(ctx, admin)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"user_id":  userID,
				"username": admin.Username,
			}).Info("Admin account created")
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "admin password, overrides SEED_ADMIN_PASSWORD")
	return cmd
}
