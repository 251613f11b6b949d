package downloads

import (
	"fmt"

	"folio/models"

	"gorm.io/gorm"
)

// Record commits the side effects of a non-rejected download: the item's
// counter goes up by exactly one through a SQL-level increment, and when the
// requester is authenticated one tracking row is appended. Both writes share
// a transaction so partial application cannot happen.
func Record(db *gorm.DB, itemType string, itemID uint, displayName string, userID *uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var model interface{}
		switch itemType {
		case models.ItemTypeProject:
			model = &models.Project{}
		case models.ItemTypeStudyMaterial:
			model = &models.StudyMaterial{}
		default:
			return fmt.Errorf("unknown item type %q", itemType)
		}

		res := tx.Model(model).Where("id = ?", itemID).
			UpdateColumn("download_count", gorm.Expr("download_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if userID != nil {
			download := models.Download{
				UserID:   *userID,
				ItemType: itemType,
				ItemID:   itemID,
				Filename: displayName,
			}
			if err := tx.Create(&download).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
