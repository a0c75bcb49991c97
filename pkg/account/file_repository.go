package account

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileUserRepository implements UserRepository using JSON file storage
type FileUserRepository struct {
	dataDir string
	users   map[string]User
	mutex   sync.RWMutex
}

// userFileData represents the structure of data stored in the JSON file
type userFileData struct {
	Users []User `json:"users"`
}

// NewFileUserRepository creates a new file-based user repository backed by
// users.json in dataDir
func NewFileUserRepository(dataDir string) (*FileUserRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileUserRepository{
		dataDir: dataDir,
		users:   make(map[string]User),
	}

	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return repo, nil
}

// GetUser returns the user record for username
func (r *FileUserRepository) GetUser(ctx context.Context, username string) (User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return User{}, ErrUserNotFound
	}

	return user, nil
}

// SetUser writes the user record, overwriting any existing record for the username
func (r *FileUserRepository) SetUser(ctx context.Context, user User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	prev, existed := r.users[user.Username]
	r.users[user.Username] = user

	if err := r.save(); err != nil {
		if existed {
			r.users[user.Username] = prev
		} else {
			delete(r.users, user.Username)
		}
		return fmt.Errorf("failed to save: %w", err)
	}

	return nil
}

func (r *FileUserRepository) load() error {
	filePath := filepath.Join(r.dataDir, "users.json")

	// If file doesn't exist, start with an empty map
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var fileData userFileData
	if err := json.Unmarshal(data, &fileData); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	r.users = make(map[string]User)
	for _, user := range fileData.Users {
		r.users[user.Username] = user
	}

	return nil
}

// save writes user data to file atomically
func (r *FileUserRepository) save() error {
	users := make([]User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	jsonData, err := json.MarshalIndent(userFileData{Users: users}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	tempFile := filepath.Join(r.dataDir, "users.json.tmp")
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	finalFile := filepath.Join(r.dataDir, "users.json")
	if err := os.Rename(tempFile, finalFile); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// FileCodeRepository implements VerificationCodeRepository using JSON file storage
type FileCodeRepository struct {
	dataDir string
	codes   map[string]VerificationCode
	mutex   sync.RWMutex
}

// codeFileData represents the structure of data stored in the JSON file
type codeFileData struct {
	Codes []VerificationCode `json:"codes"`
}

// NewFileCodeRepository creates a new file-based verification code repository
// backed by verification_codes.json in dataDir
func NewFileCodeRepository(dataDir string) (*FileCodeRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileCodeRepository{
		dataDir: dataDir,
		codes:   make(map[string]VerificationCode),
	}

	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return repo, nil
}

// GetCode returns the live verification code record for username
func (r *FileCodeRepository) GetCode(ctx context.Context, username string) (VerificationCode, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	code, exists := r.codes[username]
	if !exists {
		return VerificationCode{}, ErrCodeNotFound
	}

	return code, nil
}

// SetCode writes the verification code record, fully replacing any prior one
func (r *FileCodeRepository) SetCode(ctx context.Context, code VerificationCode) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	prev, existed := r.codes[code.Username]
	r.codes[code.Username] = code

	if err := r.save(); err != nil {
		if existed {
			r.codes[code.Username] = prev
		} else {
			delete(r.codes, code.Username)
		}
		return fmt.Errorf("failed to save: %w", err)
	}

	return nil
}

func (r *FileCodeRepository) load() error {
	filePath := filepath.Join(r.dataDir, "verification_codes.json")

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var fileData codeFileData
	if err := json.Unmarshal(data, &fileData); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	r.codes = make(map[string]VerificationCode)
	for _, code := range fileData.Codes {
		r.codes[code.Username] = code
	}

	return nil
}

// save writes verification code data to file atomically
func (r *FileCodeRepository) save() error {
	codes := make([]VerificationCode, 0, len(r.codes))
	for _, code := range r.codes {
		codes = append(codes, code)
	}

	jsonData, err := json.MarshalIndent(codeFileData{Codes: codes}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	tempFile := filepath.Join(r.dataDir, "verification_codes.json.tmp")
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	finalFile := filepath.Join(r.dataDir, "verification_codes.json")
	if err := os.Rename(tempFile, finalFile); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
