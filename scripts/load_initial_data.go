package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Initials string `yaml:"initials"`
	Role     string `yaml:"role"`
	Phone    string `yaml:"phone,omitempty"`
}

type CampaignData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	CreatedBy   string   `yaml:"created_by,omitempty"`
	Callers     []string `yaml:"callers,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CampaignsFile struct {
	Campaigns []CampaignData `yaml:"campaigns"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if cfg.IsDevelopment() {
		printDevTokens(cfg.JWTSecret, users)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: logger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) (map[string]*models.User, error) {
	var usersFiles []UsersFile
	if err := walkYAML(dataDir, "users", &usersFiles); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	var campaignsFiles []CampaignsFile
	if err := walkYAML(dataDir, "campaigns", &campaignsFiles); err != nil {
		return nil, fmt.Errorf("failed to load campaigns: %w", err)
	}

	userMap := make(map[string]*models.User)
	userCreated, userTotal := 0, 0
	for _, file := range usersFiles {
		for _, userData := range file.Users {
			user, created, err := createUser(db, userData)
			if err != nil {
				return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			userMap[strings.ToLower(userData.Email)] = user
			userTotal++
			if created {
				userCreated++
			}
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, userTotal)

	campaignCreated, campaignTotal, assigned := 0, 0, 0
	for _, file := range campaignsFiles {
		for _, campaignData := range file.Campaigns {
			campaign, created, err := createCampaign(db, campaignData, userMap)
			if err != nil {
				return nil, fmt.Errorf("failed to create campaign %s: %w", campaignData.Name, err)
			}
			campaignTotal++
			if created {
				campaignCreated++
			}

			for _, email := range campaignData.Callers {
				user, ok := userMap[strings.ToLower(email)]
				if !ok {
					log.Printf("Warning: campaign %s lists unknown caller %s", campaignData.Name, email)
					continue
				}
				added, err := assignCaller(db, campaign, user)
				if err != nil {
					return nil, fmt.Errorf("failed to assign %s to %s: %w", email, campaignData.Name, err)
				}
				if added {
					assigned++
				}
			}
		}
	}
	log.Printf("Campaigns: %d created, %d total, %d callers assigned", campaignCreated, campaignTotal, assigned)

	return userMap, nil
}

// walkYAML unmarshals every .yaml file under dataDir whose path contains kind
func walkYAML[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("LOWER(email) = LOWER(?)", userData.Email).First(&user).Error
	if err == nil {
		return &user, false, nil // existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.UserRole(userData.Role)
	if role == "" {
		role = models.UserRoleCaller
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", userData.Role)
	}

	user = models.User{
		Name:     userData.Name,
		Email:    userData.Email,
		Initials: userData.Initials,
		Role:     role,
		Phone:    userData.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createCampaign(db *gorm.DB, campaignData CampaignData, userMap map[string]*models.User) (*models.Campaign, bool, error) {
	var campaign models.Campaign
	err := db.Where("name = ?", campaignData.Name).First(&campaign).Error
	if err == nil {
		return &campaign, false, nil // existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query campaign: %w", err)
	}

	status := models.CampaignStatus(strings.ToUpper(campaignData.Status))
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", campaignData.Status)
	}

	campaign = models.Campaign{
		Name:        campaignData.Name,
		Description: campaignData.Description,
		Status:      status,
	}
	if creator, ok := userMap[strings.ToLower(campaignData.CreatedBy)]; ok {
		campaign.CreatedBy = &creator.ID
	}
	if err := db.Create(&campaign).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create campaign: %w", err)
	}
	return &campaign, true, nil
}

// assignCaller adds user to the campaign unless they already hold an active assignment
func assignCaller(db *gorm.DB, campaign *models.Campaign, user *models.User) (bool, error) {
	var count int64
	err := db.Model(&models.CampaignAssignee{}).
		Where("campaign_id = ? AND user_id = ? AND is_active = ?", campaign.ID, user.ID, true).
		Count(&count).Error
	if err != nil || count > 0 {
		return false, err
	}

	assignee := models.CampaignAssignee{
		CampaignID:     campaign.ID,
		UserID:         user.ID,
		AssignedBy:     campaign.CreatedBy,
		RoleInCampaign: models.CampaignRoleCaller,
		IsActive:       true,
		AssignedAt:     time.Now(),
	}
	return true, db.Create(&assignee).Error
}

// printDevTokens logs a day-long bearer token for every non-caller user so the API can be
// exercised locally without the identity service
func printDevTokens(secret string, users map[string]*models.User) {
	authService, err := auth.NewAuthService(secret)
	if err != nil {
		log.Printf("Warning: cannot issue dev tokens: %v", err)
		return
	}
	for _, user := range users {
		if user.Role == models.UserRoleCaller {
			continue
		}
		token, err := authService.GenerateJWT(user.ID, user.Email, 24*time.Hour)
		if err != nil {
			log.Printf("Warning: token for %s: %v", user.Email, err)
			continue
		}
		log.Printf("Dev token for %s (%s): %s", user.Email, user.Role, token)
	}
}
