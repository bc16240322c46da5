package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Config struct {
	Env          string
	Debug        bool
	TestMode     bool
	AppName      string
	Build        string
	Host         string
	RollbarToken string

	Database struct {
		Driver string
		Path   string // file path, or key suffix for redis
	}

	Redis struct {
		Addr      string
		Password  string
		DB        int
		KeyPrefix string
	}
}

func newViper(env string) *viper.Viper {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Grade Tracker")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("storageDriver", DriverFile)
	v.SetDefault("databasePath", "Database.txt")
	v.SetDefault("redisAddr", "localhost:6379")
	v.SetDefault("redisPassword", "")
	v.SetDefault("redisDB", 0)
	v.SetDefault("redisKeyPrefix", "gradetracker:")
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}

	v.SetEnvPrefix(env)
	v.AutomaticEnv()
	return v
}

// NewConfig reads the configuration for the environment named by ENV (DEV by default).
// A config/.env.<env> file under workDir is loaded first when it exists.
func NewConfig(workDir string) (*Config, error) {
	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}

	v := newViper(env)
	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Host, _ = os.Hostname()
	conf.Database.Driver = strings.ToLower(v.GetString("storageDriver"))
	conf.Database.Path = v.GetString("databasePath")
	conf.Redis.Addr = v.GetString("redisAddr")
	conf.Redis.Password = v.GetString("redisPassword")
	conf.Redis.DB = v.GetInt("redisDB")
	conf.Redis.KeyPrefix = v.GetString("redisKeyPrefix")

	switch conf.Database.Driver {
	case DriverFile, DriverMemory, DriverRedis:
	default:
		return nil, errors.Errorf("unknown storage driver %q", conf.Database.Driver)
	}
	return conf, nil
}
