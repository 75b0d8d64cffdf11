package database

import (
	"fmt"
	"ielts_edu_backend/internal/config"
	"ielts_edu_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.GroupStudent{},
		&model.Exam{},
		&model.ExamAssignment{},
		&model.ReadingPassage{},
		&model.ReadingQuestion{},
		&model.ReadingSubQuestion{},
		&model.ListeningAudio{},
		&model.ListeningQuestion{},
		&model.ListeningSubQuestion{},
		&model.WritingTask{},
		&model.SpeakingPart{},
		&model.SpeakingSubQuestion{},
		&model.Attempt{},
		&model.AttemptAudio{},
		&model.Review{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
