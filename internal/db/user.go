package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 定义了后台管理员模型
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureAdmin 在启动时自举后台账号：凭据非空且账号不存在时创建一个
// bcrypt 哈希的管理员。已存在的账号不会被覆盖，密码轮换需手动处理。
func EnsureAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	err := DB.Where("username = ?", username).First(&User{}).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return DB.Create(&User{Username: username, Password: string(hashed)}).Error
}
