package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	configFileType    = "json"
	configDirName     = "askai"
	configFileName    = "config.json"
	configFileMode    = os.FileMode(0o600)
	configDirMode     = os.FileMode(0o755)
	xdgConfigHomeEnv  = "XDG_CONFIG_HOME"
	homeEnv           = "HOME"
	fallbackConfigDir = ".config"

	defaultProviderSettingKey  = "default_provider"
	defaultModelsSettingKey    = "default_models"
	maxResponseWordsSettingKey = "max_response_words"

	configReadErrorFormat  = "read configuration %s: %w"
	configWriteErrorFormat = "write configuration %s: %w"
)

// InvalidError reports a persisted configuration file that could not be
// parsed. It is surfaced to the user rather than silently discarded.
type InvalidError struct {
	Path string
	Err  error
}

func (invalidErr *InvalidError) Error() string {
	return fmt.Sprintf("invalid configuration file %s: %v (run askai --config-reset to restore defaults)", invalidErr.Path, invalidErr.Err)
}

func (invalidErr *InvalidError) Unwrap() error { return invalidErr.Err }

// Store reads and writes the configuration file. Writes are always full
// rewrites, never partial patches.
type Store struct {
	fileSystem afero.Fs
	path       string
}

// NewStore builds a store over the given filesystem and file path. Tests use
// afero.NewMemMapFs here.
func NewStore(fileSystem afero.Fs, path string) Store {
	return Store{fileSystem: fileSystem, path: path}
}

// NewDefaultStore builds a store over the OS filesystem at DefaultPath.
func NewDefaultStore() Store {
	return NewStore(afero.NewOsFs(), DefaultPath())
}

// DefaultPath returns the per-user configuration file location:
// $XDG_CONFIG_HOME/askai/config.json, else $HOME/.config/askai/config.json.
func DefaultPath() string {
	configHome := os.Getenv(xdgConfigHomeEnv)
	if configHome == "" {
		configHome = filepath.Join(os.Getenv(homeEnv), fallbackConfigDir)
	}
	return filepath.Join(configHome, configDirName, configFileName)
}

// Path returns the configuration file location used by this store.
func (store Store) Path() string { return store.path }

// Load reads the configuration file, filling absent or invalid values from
// DefaultSettings. A missing file yields defaults and writes the initial
// file. An unparseable file yields InvalidError.
func (store Store) Load() (Settings, error) {
	reader := viper.New()
	reader.SetFs(store.fileSystem)
	reader.SetConfigFile(store.path)
	reader.SetConfigType(configFileType)

	if readErr := reader.ReadInConfig(); readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			settings := DefaultSettings()
			if saveErr := store.Save(settings); saveErr != nil {
				return Settings{}, saveErr
			}
			return settings, nil
		}
		var parseErr viper.ConfigParseError
		if errors.As(readErr, &parseErr) {
			return Settings{}, &InvalidError{Path: store.path, Err: readErr}
		}
		return Settings{}, fmt.Errorf(configReadErrorFormat, store.path, readErr)
	}

	settings := DefaultSettings()
	if providerKey := reader.GetString(defaultProviderSettingKey); providerKey != "" {
		settings.DefaultProvider = providerKey
	}
	for providerKey, model := range reader.GetStringMapString(defaultModelsSettingKey) {
		settings.DefaultModels[providerKey] = model
	}
	if words := reader.GetInt(maxResponseWordsSettingKey); words > 0 {
		settings.MaxResponseWords = words
	}
	return settings, nil
}

// Save rewrites the whole configuration file, creating parent directories and
// restricting the file to user read/write.
func (store Store) Save(settings Settings) error {
	writer := viper.New()
	writer.SetFs(store.fileSystem)
	writer.SetConfigType(configFileType)
	writer.Set(defaultProviderSettingKey, settings.DefaultProvider)
	writer.Set(defaultModelsSettingKey, settings.DefaultModels)
	writer.Set(maxResponseWordsSettingKey, settings.MaxResponseWords)

	if mkdirErr := store.fileSystem.MkdirAll(filepath.Dir(store.path), configDirMode); mkdirErr != nil {
		return fmt.Errorf(configWriteErrorFormat, store.path, mkdirErr)
	}
	if writeErr := writer.WriteConfigAs(store.path); writeErr != nil {
		return fmt.Errorf(configWriteErrorFormat, store.path, writeErr)
	}
	if chmodErr := store.fileSystem.Chmod(store.path, configFileMode); chmodErr != nil {
		return fmt.Errorf(configWriteErrorFormat, store.path, chmodErr)
	}
	return nil
}

// Reset rewrites the configuration file with DefaultSettings.
func (store Store) Reset() (Settings, error) {
	settings := DefaultSettings()
	if saveErr := store.Save(settings); saveErr != nil {
		return Settings{}, saveErr
	}
	return settings, nil
}
