package main

import (
	"log/slog"
	"os"

	"github.com/aidbridge/aidbridge-backend/pkg/db"
	"github.com/aidbridge/aidbridge-backend/pkg/user-management/pwhash"
	"github.com/aidbridge/aidbridge-backend/pkg/utils"
	"gopkg.in/yaml.v2"

	membershipDB "github.com/aidbridge/aidbridge-backend/pkg/db/membership"
	userDB "github.com/aidbridge/aidbridge-backend/pkg/db/user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_USER_DB_USERNAME       = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD       = "USER_DB_PASSWORD"
	ENV_MEMBERSHIP_DB_USERNAME = "MEMBERSHIP_DB_USERNAME"
	ENV_MEMBERSHIP_DB_PASSWORD = "MEMBERSHIP_DB_PASSWORD"

	ENV_ADMIN_EMAIL    = "ADMIN_EMAIL"
	ENV_ADMIN_PASSWORD = "ADMIN_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		UserDB       db.DBConfigYaml `json:"user_db" yaml:"user_db"`
		MembershipDB db.DBConfigYaml `json:"membership_db" yaml:"membership_db"`
	} `json:"db_configs" yaml:"db_configs"`

	PWHashing struct {
		Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
		Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
		Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
	} `json:"pw_hashing" yaml:"pw_hashing"`

	// Admin account created on first run, password comes from env
	AdminAccount struct {
		Email    string `json:"email" yaml:"email"`
		Password string `json:"password" yaml:"password"`
	} `json:"admin_account" yaml:"admin_account"`

	// Plans to seed, upserted by plan type
	Plans []membershipDB.Plan `json:"plans" yaml:"plans"`
}

var conf config

var (
	userDBService       *userDB.UserDBService
	membershipDBService *membershipDB.MembershipDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	// init argon2
	pwhash.InitArgonParams(
		conf.PWHashing.Argon2Memory,
		conf.PWHashing.Argon2Iterations,
		conf.PWHashing.Argon2Parallelism,
	)

	// init db
	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_MEMBERSHIP_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MembershipDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_MEMBERSHIP_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MembershipDB.Password = dbPassword
	}

	if adminEmail := os.Getenv(ENV_ADMIN_EMAIL); adminEmail != "" {
		conf.AdminAccount.Email = adminEmail
	}

	if adminPassword := os.Getenv(ENV_ADMIN_PASSWORD); adminPassword != "" {
		conf.AdminAccount.Password = adminPassword
	}
}

func initDBs() {
	var err error
	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj("user DB", conf.DBConfigs.UserDB))
	if err != nil {
		slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
		panic(err)
	}

	membershipDBService, err = membershipDB.NewMembershipDBService(db.DBConfigFromYamlObj("membership DB", conf.DBConfigs.MembershipDB))
	if err != nil {
		slog.Error("Error connecting to Membership DB", slog.String("error", err.Error()))
		panic(err)
	}
}
