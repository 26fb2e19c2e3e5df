package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/model"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/service"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/db"
)

var (
	dbCmd = &cobra.Command{
		Use:   "db",
		Short: "Database related commands",
	}

	dbListCmd = &cobra.Command{
		Use:   "ls",
		Short: "list all registered database types",
		Run: func(cmd *cobra.Command, args []string) {

			fmt.Fprintln(cmd.OutOrStdout(), "Registered database types:")
			for _, dbType := range db.GetRegisteredDBTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), " - "+dbType)
			}
		},
	}

	dbMigrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "run database auto migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			mgr, err := storage.Init(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			if err := mgr.DB.Migrate(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migration complete")

			return nil
		},
	}

	seedAdminEmail    string
	seedAdminPassword string

	dbSeedAdminCmd = &cobra.Command{
		Use:   "seed-admin",
		Short: "create an initial ADMIN account (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			mgr, err := storage.Init(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			if err := mgr.DB.Migrate(); err != nil {
				return err
			}

			return seedAdmin(cmd.Context(), mgr, cmd)
		},
	}
)

// seedAdmin 建立初始管理员. 邮箱已存在时不做任何修改.
func seedAdmin(ctx context.Context, mgr *storage.Manager, cmd *cobra.Command) error {
	var existing model.User

	err := mgr.DB.WithContext(ctx).Where("email = ?", seedAdminEmail).First(&existing).Error
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "account already exists, nothing to do")
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := service.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:              seedAdminEmail,
		PasswordHash:       hash,
		Name:               "Administrator",
		Role:               model.RoleAdmin,
		Status:             model.StatusActive,
		SubscriptionActive: true,
	}

	if err := mgr.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created admin account %s (id=%d)\n", admin.Email, admin.ID)

	return nil
}

// registerDBCommands 注册数据库相关命令.
func registerDBCommands() {
	rootCmd.AddCommand(dbCmd)

	dbSeedAdminCmd.Flags().StringVar(&seedAdminEmail, "email", "admin@example.com", "admin email")
	dbSeedAdminCmd.Flags().StringVar(&seedAdminPassword, "password", "", "admin password (required)")
	_ = dbSeedAdminCmd.MarkFlagRequired("password")

	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbSeedAdminCmd)
}
