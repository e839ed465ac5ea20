package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

// FindByTitle 根据标题精确查询, title 需已小写
func (d *Topic) FindByTitle(ctx context.Context, title string) (*models.Topic, error) {
	return d.Repo.FindByWhere(ctx, "title = ?", title)
}

func (d *Topic) IsTitleExist(ctx context.Context, title string) (bool, error) {
	return d.Repo.IsExist(ctx, "title = ?", title)
}

// List 按创建顺序返回全部话题
func (d *Topic) List(ctx context.Context) ([]*models.Topic, error) {
	return d.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("id ASC")
	})
}

// Mutate loads the topic row under a row lock, applies fn to the whole
// aggregate and writes the discussions column back in the same transaction.
// Concurrent mutations of one topic are serialized by the lock.
func (d *Topic) Mutate(ctx context.Context, title string, fn func(topic *models.Topic) error) (*models.Topic, error) {
	var topic models.Topic

	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("title = ?", title).
			First(&topic).Error
		if err != nil {
			return err
		}

		if err := fn(&topic); err != nil {
			return err
		}

		return tx.Model(&topic).Update("discussions", topic.Discussions).Error
	})
	if err != nil {
		return nil, err
	}

	return &topic, nil
}
