package env

import (
	"os"
	"strconv"
)

type Env struct {
	Server  ServerConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	FilePath string
}

var setupEnv = false
var env = Env{}

func GetEnv() (*Env, error) {

	if !setupEnv {

		serverPort := 8080
		if raw := os.Getenv("CATALOG_SERVER_PORT"); raw != "" {

			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return nil, err
			}

			serverPort = parsed
		}

		filePath := os.Getenv("CATALOG_DATA_FILE")
		if filePath == "" {
			filePath = "items.json"
		}

		env = Env{
			Server: ServerConfig{
				Port: serverPort,
			},
			Storage: StorageConfig{
				FilePath: filePath,
			},
		}

		setupEnv = true
	}

	return &env, nil
}
