package main

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/dave9314/online-market/internal/models"
)

// seedData inserts the fixed category catalog and the initial admin
// account. Both are no-ops when the rows already exist.
func (app *application) seedData(ctx context.Context) error {
	if err := app.categoryService.SeedDefaults(ctx); err != nil {
		return err
	}

	adminUsername := app.cfg.Auth.AdminUsername
	if adminUsername == "" {
		adminUsername = "admin"
	}
	_, err := app.userRepo.GetUserByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if err != models.ErrUserNotFound {
		return err
	}

	adminPassword := app.cfg.Auth.AdminPassword
	if adminPassword == "" {
		app.infoLog.Printf("no admin password configured, skipping admin seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username: adminUsername,
		Password: string(hashedPassword),
		FullName: "Admin User",
		Address:  "123 Admin Street",
		Phone:    "1234567890",
		Email:    "admin@marketplace.com",
		Role:     models.RoleAdmin,
	}
	if _, err := app.userRepo.CreateUser(ctx, admin); err != nil {
		return err
	}
	app.infoLog.Printf("seeded admin user %q", adminUsername)
	return nil
}
