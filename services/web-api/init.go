package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/aidbridge/aidbridge-backend/pkg/apihelpers"
	"github.com/aidbridge/aidbridge-backend/pkg/db"
	emailsending "github.com/aidbridge/aidbridge-backend/pkg/messaging/email-sending"
	"github.com/aidbridge/aidbridge-backend/pkg/user-management/pwhash"
	"github.com/aidbridge/aidbridge-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	umUtils "github.com/aidbridge/aidbridge-backend/pkg/user-management/utils"

	contentDB "github.com/aidbridge/aidbridge-backend/pkg/db/content"
	membershipDB "github.com/aidbridge/aidbridge-backend/pkg/db/membership"
	userDB "github.com/aidbridge/aidbridge-backend/pkg/db/user"

	smtpclient "github.com/aidbridge/aidbridge-backend/pkg/smtp-client"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_USER_DB_USERNAME       = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD       = "USER_DB_PASSWORD"
	ENV_MEMBERSHIP_DB_USERNAME = "MEMBERSHIP_DB_USERNAME"
	ENV_MEMBERSHIP_DB_PASSWORD = "MEMBERSHIP_DB_PASSWORD"
	ENV_CONTENT_DB_USERNAME    = "CONTENT_DB_USERNAME"
	ENV_CONTENT_DB_PASSWORD    = "CONTENT_DB_PASSWORD"

	ENV_SMTP_PASSWORD = "SMTP_PASSWORD"

	ENV_USER_JWT_SIGN_KEY   = "USER_JWT_SIGN_KEY"
	ENV_USER_JWT_EXPIRES_IN = "USER_JWT_EXPIRES_IN"
)

const defaultTokenExpiresIn = 24 * time.Hour

type WebApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// user management configs
	UserManagementConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		UserJWTConfig struct {
			SignKey   string        `json:"sign_key" yaml:"sign_key"`
			ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
		} `json:"user_jwt_config" yaml:"user_jwt_config"`
		BlockedPasswordsFilePath string `json:"blocked_passwords_file_path" yaml:"blocked_passwords_file_path"`
	} `json:"user_management_config" yaml:"user_management_config"`

	// DB configs
	DBConfigs struct {
		UserDB       db.DBConfigYaml `json:"user_db" yaml:"user_db"`
		MembershipDB db.DBConfigYaml `json:"membership_db" yaml:"membership_db"`
		ContentDB    db.DBConfigYaml `json:"content_db" yaml:"content_db"`
	} `json:"db_configs" yaml:"db_configs"`

	FilestorePath string `json:"filestore_path" yaml:"filestore_path"`

	// SMTP configs for transactional emails, either inline or in a
	// separate server list file
	SMTPConfigs          smtpclient.SmtpServerList `json:"smtp_configs" yaml:"smtp_configs"`
	SMTPServerConfigPath string                    `json:"smtp_server_config_path" yaml:"smtp_server_config_path"`
}

var (
	userDBService       *userDB.UserDBService
	membershipDBService *membershipDB.MembershipDBService
	contentDBService    *contentDB.ContentDBService
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

	// A dedicated server list file replaces the inline SMTP settings, so
	// it is loaded before the env overrides run.
	if conf.SMTPServerConfigPath != "" {
		if err := conf.SMTPConfigs.ReadFromFile(conf.SMTPServerConfigPath); err != nil {
			slog.Error("Error reading SMTP server config", slog.String("error", err.Error()), slog.String("path", conf.SMTPServerConfigPath))
			panic(err)
		}
	}

	// Override secrets from environment variables
	secretsOverride()

	if conf.UserManagementConfig.UserJWTConfig.SignKey == "" {
		panic("user JWT sign key not set")
	}
	if conf.UserManagementConfig.UserJWTConfig.ExpiresIn == 0 {
		conf.UserManagementConfig.UserJWTConfig.ExpiresIn = defaultTokenExpiresIn
	}

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.UserManagementConfig.PWHashing.Argon2Memory,
		conf.UserManagementConfig.PWHashing.Argon2Iterations,
		conf.UserManagementConfig.PWHashing.Argon2Parallelism,
	)

	if conf.UserManagementConfig.BlockedPasswordsFilePath != "" {
		if err := umUtils.LoadBlockedPasswords(conf.UserManagementConfig.BlockedPasswordsFilePath); err != nil {
			panic(err)
		}
	}

	// init message sending config
	initMessageSendingConfig()

	checkFilestorePath()
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

	if dbUsername := os.Getenv(ENV_CONTENT_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.ContentDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_CONTENT_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.ContentDB.Password = dbPassword
	}

	if smtpPassword := os.Getenv(ENV_SMTP_PASSWORD); smtpPassword != "" {
		for i := range conf.SMTPConfigs.Servers {
			conf.SMTPConfigs.Servers[i].SetPassword(smtpPassword)
		}
	}

	if userJwtSignKey := os.Getenv(ENV_USER_JWT_SIGN_KEY); userJwtSignKey != "" {
		conf.UserManagementConfig.UserJWTConfig.SignKey = userJwtSignKey
	}

	if expInVal := os.Getenv(ENV_USER_JWT_EXPIRES_IN); expInVal != "" {
		expiresIn, err := utils.ParseDurationString(expInVal)
		if err != nil {
			slog.Error("error parsing token lifetime", slog.String("error", err.Error()), slog.String(ENV_USER_JWT_EXPIRES_IN, expInVal))
			panic(err)
		}
		conf.UserManagementConfig.UserJWTConfig.ExpiresIn = expiresIn
	}
}

func checkFilestorePath() {
	// To store uploaded media and cover images
	fsPath := conf.FilestorePath
	if fsPath == "" {
		slog.Error("Filestore path not set - configure filestore_path in the config file.")
		panic("Filestore path not set")
	}

	if _, err := os.Stat(fsPath); os.IsNotExist(err) {
		slog.Error("Filestore path does not exist", slog.String("path", fsPath))
		panic("Filestore path does not exist")
	}
}

func initMessageSendingConfig() {
	if err := emailsending.InitMessageSendingVariables(conf.SMTPConfigs); err != nil {
		slog.Error("Error initializing message sending", slog.String("error", err.Error()))
		panic("Error initializing message sending")
	}
}

func initDBs() {
	var err error
	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj("user DB", conf.DBConfigs.UserDB))
	if err != nil {
		slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
		panic("Error connecting to User DB")
	}

	membershipDBService, err = membershipDB.NewMembershipDBService(db.DBConfigFromYamlObj("membership DB", conf.DBConfigs.MembershipDB))
	if err != nil {
		slog.Error("Error connecting to Membership DB", slog.String("error", err.Error()))
		panic("Error connecting to Membership DB")
	}

	contentDBService, err = contentDB.NewContentDBService(db.DBConfigFromYamlObj("content DB", conf.DBConfigs.ContentDB))
	if err != nil {
		slog.Error("Error connecting to Content DB", slog.String("error", err.Error()))
		panic("Error connecting to Content DB")
	}
}
