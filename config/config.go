package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Storage StorageConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// JWTConfig carries one lifetime per role. The admin/doctor asymmetry
// (days vs minutes) is deliberate policy, configured rather than hardcoded.
type JWTConfig struct {
	Secret        string
	AdminExpiry   time.Duration
	DoctorExpiry  time.Duration
	PatientExpiry time.Duration
}

// StorageConfig locates the attachment store that holds uploaded images
// and CVs; records only ever reference attachments by filename.
type StorageConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	adminExpiry, err := time.ParseDuration(viper.GetString("JWT_ADMIN_EXPIRY"))
	if err != nil {
		adminExpiry = 72 * time.Hour
	}

	doctorExpiry, err := time.ParseDuration(viper.GetString("JWT_DOCTOR_EXPIRY"))
	if err != nil {
		doctorExpiry = 30 * time.Minute
	}

	patientExpiry, err := time.ParseDuration(viper.GetString("JWT_PATIENT_EXPIRY"))
	if err != nil {
		patientExpiry = 30 * time.Minute
	}

	storageDir := viper.GetString("STORAGE_DIR")
	if storageDir == "" {
		storageDir = "uploads"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AdminExpiry:   adminExpiry,
			DoctorExpiry:  doctorExpiry,
			PatientExpiry: patientExpiry,
		},
		Storage: StorageConfig{
			Dir: storageDir,
		},
	}

	return config, nil
}
