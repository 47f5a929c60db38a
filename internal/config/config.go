// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlister/internal/utils"
)

// DefaultRemoteKey - ключ файла плейлиста в бакете по умолчанию
const DefaultRemoteKey = "playlist.csv"

// Config структура для хранения конфигурации приложения
type Config struct {
	PlaylistFile  string `yaml:"playlist_file"`
	Strict        bool   `yaml:"strict"`
	LogLevel      string `yaml:"log_level"`
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	RemoteKey     string `yaml:"remote_key"`
}

// DefaultPlaylistFile возвращает путь к плейлисту по умолчанию в каталоге данных XDG
func DefaultPlaylistFile() string {
	return filepath.Join(xdg.DataHome, "playlister", "playlist.csv")
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		PlaylistFile: DefaultPlaylistFile(),
		LogLevel:     "warn",
		RemoteKey:    DefaultRemoteKey,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Пустые значения в файле заменяем значениями по умолчанию
	if config.PlaylistFile == "" {
		config.PlaylistFile = DefaultPlaylistFile()
	}
	if config.RemoteKey == "" {
		config.RemoteKey = DefaultRemoteKey
	}
	if config.LogLevel == "" {
		config.LogLevel = "warn"
	}

	// Раскрываем тильду в пути плейлиста
	if config.PlaylistFile, err = utils.ExpandHome(config.PlaylistFile); err != nil {
		return nil, err
	}

	return config, nil
}

// RemoteEnabled сообщает, настроено ли удаленное хранилище
func (c *Config) RemoteEnabled() bool {
	return c.AwsBucketName != ""
}
