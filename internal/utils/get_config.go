package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// HTTP server
	AppPort string `yaml:"APP_PORT"`

	// Classification service
	ClassifierURL     string `yaml:"CLASSIFIER_URL"`
	ClassifierTimeout string `yaml:"CLASSIFIER_TIMEOUT"`

	// Undo snackbar lifetime
	UndoWindowSeconds string `yaml:"UNDO_WINDOW_SECONDS"`
}

var config Config

func LoadConfig() {
	// .env values take effect first so container deployments can skip the
	// yaml file entirely.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %s\n", err)
	}

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	var value string
	switch key {
	case "APP_PORT":
		value = config.AppPort
	case "CLASSIFIER_URL":
		value = config.ClassifierURL
	case "CLASSIFIER_TIMEOUT":
		value = config.ClassifierTimeout
	case "UNDO_WINDOW_SECONDS":
		value = config.UndoWindowSeconds
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
