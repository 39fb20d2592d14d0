package db

import (
	"fmt"
	"log/slog"
)

// DBConfigFromYamlObj builds the connection config from the parsed yaml values.
// Username and password are expected to be already overridden from environment
// variables if needed.
func DBConfigFromYamlObj(dbLabel string, yamlObj DBConfigYaml) DBConfig {
	if yamlObj.ConnectionStr == "" {
		slog.Error("couldn't read DB connection string", slog.String("db", dbLabel))
		panic("couldn't read DB connection string")
	}

	URI := fmt.Sprintf(`mongodb%s://%s`, yamlObj.ConnectionPrefix, yamlObj.ConnectionStr)
	if yamlObj.Username != "" && yamlObj.Password != "" {
		URI = fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)
	}

	timeout := yamlObj.Timeout
	if timeout <= 0 {
		timeout = 30
	}
	idleConnTimeout := yamlObj.IdleConnTimeout
	if idleConnTimeout <= 0 {
		idleConnTimeout = 45
	}
	maxPoolSize := yamlObj.MaxPoolSize
	if maxPoolSize <= 0 {
		maxPoolSize = 8
	}

	return DBConfig{
		URI:              URI,
		Timeout:          timeout,
		IdleConnTimeout:  idleConnTimeout,
		MaxPoolSize:      uint64(maxPoolSize),
		DBNamePrefix:     yamlObj.DBNamePrefix,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
