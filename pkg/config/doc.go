// Package config loads environment-driven settings into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files. Every configurable package in this module exposes a Config
// struct with `env` and `envDefault` tags (validator.Config, binder.Config,
// logger.Config) that can be filled with Load:
//
//	var cfg binder.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// A .env file in the working directory is read once, on first use, if it
// exists. LoadEnv reads explicit files and reports missing ones.
//
// # Error Handling
//
//   - ErrParsingConfig  – the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicit .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load or MustLoad.
package config
