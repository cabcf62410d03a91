package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Ключи, под которыми клиент хранит учетные данные.
// Других ключей в хранилище не бывает, версионирования схемы нет.
const (
	KeyAccessToken   = "accessToken"
	KeyRefreshToken  = "refreshToken"
	KeySavedUsername = "savedUsername"
	KeySavedPassword = "savedPassword"
)

// Credential - одна запись ключ-значение в локальном хранилище
type Credential struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName задает имя таблицы хранилища
func (Credential) TableName() string {
	return "credentials"
}

// Store представляет локальное хранилище учетных данных устройства.
// Значения переживают перезапуск приложения, срока жизни у них нет,
// шифрование не гарантируется.
type Store struct {
	db *gorm.DB
}

// Open открывает хранилище по указанному пути, создавая файл и
// директорию при необходимости
func Open(dbPath string) (*Store, error) {
	// Создаем директорию для базы данных если она не существует
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials store: %w", err)
	}

	if err := db.AutoMigrate(&Credential{}); err != nil {
		return nil, fmt.Errorf("failed to migrate credentials store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get возвращает значение по ключу. Отсутствие ключа - не ошибка:
// вызывающий трактует его как "не залогинен" / "ничего не сохранено".
func (s *Store) Get(key string) (string, bool) {
	var cred Credential
	err := s.db.Where("key = ?", key).First(&cred).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// Ошибку чтения наружу не отдаем, для вызывающего это тот же промах
			fmt.Fprintf(os.Stderr, "credstore: read %s: %v\n", key, err)
		}
		return "", false
	}
	return cred.Value, true
}

// Set записывает значение по ключу, затирая предыдущее
func (s *Store) Set(key, value string) error {
	cred := Credential{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&cred).Error
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ. Удаление отсутствующего ключа - не ошибка.
func (s *Store) Remove(key string) error {
	if err := s.db.Where("key = ?", key).Delete(&Credential{}).Error; err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// AccessToken возвращает текущий access-токен. Реализует источник
// токенов для API-клиента: значение каждый раз читается из хранилища,
// в памяти не кэшируется.
func (s *Store) AccessToken() (string, bool) {
	return s.Get(KeyAccessToken)
}

// Close закрывает подключение к хранилищу
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
