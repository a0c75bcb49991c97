package config

import "time"

// Config aggregates all service configuration, populated from the
// environment with cleanenv.
type Config struct {
	Server       ServerConfig
	Email        EmailConfig
	Storage      StorageConfig
	Firestore    FirestoreConfig
	OpenAI       OpenAIConfig
	Verification VerificationConfig
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Port string `env:"PORT" env-default:"5001"`
}

// StorageConfig selects the credential store backend
type StorageConfig struct {
	// Backend is one of "firestore", "file" or "memory"
	Backend string `env:"STORAGE_BACKEND" env-default:"firestore"`
	DataDir string `env:"STORAGE_DATA_DIR" env-default:"./data"`
}

// FirestoreConfig holds the Firestore client settings
type FirestoreConfig struct {
	ProjectID       string `env:"FIRESTORE_PROJECT_ID" env-default:"instantchat"`
	CredentialsFile string `env:"FIRESTORE_CREDENTIALS_FILE" env-default:"instantchat.json"`
}

// OpenAIConfig holds the text-generation proxy settings
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL" env-default:"gpt-3.5-turbo"`
}

// VerificationConfig holds the verification code policy
type VerificationConfig struct {
	CodeExpiry time.Duration `env:"VERIFICATION_CODE_EXPIRY" env-default:"10m"`
}
